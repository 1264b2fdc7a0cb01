// Copyright 2022 Board of Trustees of the University of Illinois.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core_test

import (
	"testing"
	"time"

	genmocks "access-building-block/core/mocks"
	"access-building-block/core/model"
	"access-building-block/utils"

	"github.com/stretchr/testify/mock"
	"gotest.tools/assert"
)

func TestAdmCreateShareLink(t *testing.T) {
	storage := genmocks.Storage{}
	var stored model.ShareLink
	storage.On("InsertShareLink", mock.AnythingOfType("model.ShareLink")).Return(nil).Run(func(args mock.Arguments) {
		stored = args.Get(0).(model.ShareLink)
	})
	storage.On("InsertAuditEvent", mock.AnythingOfType("model.AuditEvent")).Return(nil)
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	link, token, err := coreAPIs.Administration.AdmCreateShareLink(testLog(), "org1", "m1", "document", "doc1", nil, nil)
	assert.NilError(t, err)
	if token == "" {
		t.Error("raw token must be returned")
		return
	}

	//only the hash is stored, never the raw token
	assert.Equal(t, stored.TokenHash, utils.HashToken(token), "stored hash must match the raw token")
	if stored.TokenHash == token {
		t.Error("raw token must not be stored")
	}

	//defaults: read only permissions, seven day expiry
	assert.Equal(t, len(link.Permissions), 1, "permissions are different")
	assert.Equal(t, link.Permissions[0], model.ActionRead, "default permission must be read")
	if link.ExpiresAt.Before(time.Now().UTC().AddDate(0, 0, 6)) {
		t.Error("default expiry must be about seven days out")
	}
}

func TestAdmCreateShareLinkInvalid(t *testing.T) {
	storage := genmocks.Storage{}
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	//missing resource
	_, _, err := coreAPIs.Administration.AdmCreateShareLink(testLog(), "org1", "m1", "", "doc1", nil, nil)
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusInvalid, "kind is different")

	//non positive expiry
	days := 0
	_, _, err = coreAPIs.Administration.AdmCreateShareLink(testLog(), "org1", "m1", "document", "doc1", &days, nil)
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusInvalid, "kind is different")

	//unknown permission action
	_, _, err = coreAPIs.Administration.AdmCreateShareLink(testLog(), "org1", "m1", "document", "doc1", nil, []model.Action{"approve"})
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusInvalid, "kind is different")
}

func TestSerValidateShareToken(t *testing.T) {
	token := "raw-token"
	link := &model.ShareLink{ID: "sl1", OrgID: "org1", ResourceType: "document", ResourceID: "doc1",
		TokenHash: utils.HashToken(token), Permissions: []model.Action{model.ActionRead},
		ExpiresAt: time.Now().UTC().AddDate(0, 0, 1), AccessCount: 4}

	storage := genmocks.Storage{}
	storage.On("FindShareLinkByTokenHash", utils.HashToken(token)).Return(link, nil)
	storage.On("RecordShareLinkAccess", "sl1", mock.AnythingOfType("time.Time")).Return(nil)
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	status, got, err := coreAPIs.Services.SerValidateShareToken(testLog(), token)
	assert.NilError(t, err)
	assert.Equal(t, status, model.ShareTokenValid, "status is different")
	assert.Equal(t, got.AccessCount, int64(5), "access count must be bumped")
	if got.LastAccessedAt == nil {
		t.Error("last accessed must be set")
	}
}

func TestSerValidateShareTokenNotFound(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindShareLinkByTokenHash", mock.AnythingOfType("string")).Return(nil, nil)
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	status, link, err := coreAPIs.Services.SerValidateShareToken(testLog(), "unknown")
	assert.NilError(t, err)
	assert.Equal(t, status, model.ShareTokenNotFound, "status is different")
	if link != nil {
		t.Error("no link data for an unknown token")
	}
}

func TestSerValidateShareTokenRevokedBeforeExpired(t *testing.T) {
	token := "raw-token"
	revokedAt := time.Now().UTC().Add(-time.Hour)
	//both revoked and expired - revocation must win the verdict
	link := &model.ShareLink{ID: "sl1", TokenHash: utils.HashToken(token),
		ExpiresAt: time.Now().UTC().Add(-2 * time.Hour), RevokedAt: &revokedAt}

	storage := genmocks.Storage{}
	storage.On("FindShareLinkByTokenHash", utils.HashToken(token)).Return(link, nil)
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	status, got, err := coreAPIs.Services.SerValidateShareToken(testLog(), token)
	assert.NilError(t, err)
	assert.Equal(t, status, model.ShareTokenRevoked, "revocation must be checked before expiry")
	if got != nil {
		t.Error("no link data for a revoked token")
	}
	storage.AssertNotCalled(t, "RecordShareLinkAccess")
}

func TestSerValidateShareTokenExpired(t *testing.T) {
	token := "raw-token"
	link := &model.ShareLink{ID: "sl1", TokenHash: utils.HashToken(token),
		ExpiresAt: time.Now().UTC().Add(-time.Minute)}

	storage := genmocks.Storage{}
	storage.On("FindShareLinkByTokenHash", utils.HashToken(token)).Return(link, nil)
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	status, _, err := coreAPIs.Services.SerValidateShareToken(testLog(), token)
	assert.NilError(t, err)
	assert.Equal(t, status, model.ShareTokenExpired, "status is different")
	storage.AssertNotCalled(t, "RecordShareLinkAccess")
}

func TestAdmRevokeShareLink(t *testing.T) {
	link := &model.ShareLink{ID: "sl1", OrgID: "org1", ResourceType: "document", ResourceID: "doc1",
		ExpiresAt: time.Now().UTC().AddDate(0, 0, 1)}

	storage := genmocks.Storage{}
	storage.On("FindShareLinkByID", "org1", "sl1").Return(link, nil)
	storage.On("RevokeShareLink", "sl1", mock.AnythingOfType("time.Time")).Return(true, nil)
	storage.On("InsertAuditEvent", mock.AnythingOfType("model.AuditEvent")).Return(nil)
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	err := coreAPIs.Administration.AdmRevokeShareLink(testLog(), "org1", "admin1", "sl1")
	assert.NilError(t, err)
}

func TestAdmRevokeShareLinkIdempotent(t *testing.T) {
	revokedAt := time.Now().UTC().Add(-time.Hour)
	link := &model.ShareLink{ID: "sl1", OrgID: "org1", RevokedAt: &revokedAt,
		ExpiresAt: time.Now().UTC().AddDate(0, 0, 1)}

	storage := genmocks.Storage{}
	storage.On("FindShareLinkByID", "org1", "sl1").Return(link, nil)
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	//revoking an already revoked link is a no-op success
	err := coreAPIs.Administration.AdmRevokeShareLink(testLog(), "org1", "admin1", "sl1")
	assert.NilError(t, err)
	storage.AssertNotCalled(t, "RevokeShareLink")

	//second case - unknown link
	storage2 := genmocks.Storage{}
	storage2.On("FindShareLinkByID", "org1", "nope").Return(nil, nil)
	coreAPIs = testCoreAPIs(&storage2, nil, nil)

	err = coreAPIs.Administration.AdmRevokeShareLink(testLog(), "org1", "admin1", "nope")
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusNotFound, "kind is different")
}
