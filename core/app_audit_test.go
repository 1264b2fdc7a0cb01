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
	"errors"
	"testing"

	genmocks "access-building-block/core/mocks"
	"access-building-block/core/model"

	"github.com/stretchr/testify/mock"
	"gotest.tools/assert"
)

func TestAdmQueryAuditEvents(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindAuditEvents", "org1", model.AuditFilter{Limit: 100}).Return([]model.AuditEvent{{ID: "e1"}}, nil)
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	//no limit falls back to the default
	events, err := coreAPIs.Administration.AdmQueryAuditEvents(testLog(), "org1", model.AuditFilter{})
	assert.NilError(t, err)
	assert.Equal(t, len(events), 1, "result is different")
}

func TestAdmQueryAuditEventsCapsLimit(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindAuditEvents", "org1", model.AuditFilter{Limit: 500}).Return([]model.AuditEvent{}, nil)
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	_, err := coreAPIs.Administration.AdmQueryAuditEvents(testLog(), "org1", model.AuditFilter{Limit: 10000})
	assert.NilError(t, err)
	storage.AssertCalled(t, "FindAuditEvents", "org1", model.AuditFilter{Limit: 500})
}

func TestAuditFailureNeverFailsTheMutation(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindMemberByID", "org1", "g1").Return(&model.Member{ID: "g1", OrgID: "org1", Role: model.RoleGuest}, nil)
	storage.On("SaveProjectAccessGrant", mock.AnythingOfType("model.ProjectAccessGrant")).Return(nil)
	//the audit trail write fails - the grant must still succeed
	storage.On("InsertAuditEvent", mock.AnythingOfType("model.AuditEvent")).Return(errors.New("audit store down"))
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	grant, err := coreAPIs.Administration.AdmGrantProjectAccess(testLog(), "org1", "admin1", "g1", "proj1", model.AccessLevelRead)
	assert.NilError(t, err)
	if grant == nil {
		t.Error("grant must be returned despite the lost audit event")
	}
}
