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
	"time"

	genmocks "access-building-block/core/mocks"
	"access-building-block/core/model"
	"access-building-block/driven/storage"
	"access-building-block/utils"

	"github.com/stretchr/testify/mock"
	"gotest.tools/assert"
)

func TestAdmCreateInvitation(t *testing.T) {
	storageMock := genmocks.Storage{}
	storageMock.On("FindMemberByEmail", "org1", "new@example.com").Return(nil, nil)
	storageMock.On("FindPendingInvitation", "org1", "new@example.com").Return(nil, nil)
	var stored model.Invitation
	storageMock.On("InsertInvitation", mock.AnythingOfType("model.Invitation")).Return(nil).Run(func(args mock.Arguments) {
		stored = args.Get(0).(model.Invitation)
	})
	storageMock.On("InsertAuditEvent", mock.AnythingOfType("model.AuditEvent")).Return(nil)
	emailer := genmocks.Emailer{}
	emailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	coreAPIs := testCoreAPIs(&storageMock, nil, &emailer)

	invitation, err := coreAPIs.Administration.AdmCreateInvitation(testLog(), "org1", "admin1", "new@example.com", model.RoleMember)
	assert.NilError(t, err)
	assert.Equal(t, invitation.Status, model.InvitationStatusPending, "status is different")
	assert.Equal(t, invitation.Role, model.RoleMember, "role is different")
	if stored.TokenHash == "" {
		t.Error("token hash must be stored")
	}
	if invitation.ExpiresAt.Before(time.Now().UTC().AddDate(0, 0, 6)) {
		t.Error("expiry must be about seven days out")
	}
}

func TestAdmCreateInvitationConflicts(t *testing.T) {
	//already a member
	storageMock := genmocks.Storage{}
	storageMock.On("FindMemberByEmail", "org1", "member@example.com").Return(&model.Member{ID: "m1"}, nil)
	coreAPIs := testCoreAPIs(&storageMock, nil, nil)

	_, err := coreAPIs.Administration.AdmCreateInvitation(testLog(), "org1", "admin1", "member@example.com", model.RoleMember)
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusConflict, "kind is different")

	//already invited
	storageMock2 := genmocks.Storage{}
	storageMock2.On("FindMemberByEmail", "org1", "invited@example.com").Return(nil, nil)
	storageMock2.On("FindPendingInvitation", "org1", "invited@example.com").Return(&model.Invitation{ID: "i1", Status: model.InvitationStatusPending}, nil)
	coreAPIs = testCoreAPIs(&storageMock2, nil, nil)

	_, err = coreAPIs.Administration.AdmCreateInvitation(testLog(), "org1", "admin1", "invited@example.com", model.RoleMember)
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusConflict, "kind is different")

	//unknown role
	storageMock3 := genmocks.Storage{}
	coreAPIs = testCoreAPIs(&storageMock3, nil, nil)

	_, err = coreAPIs.Administration.AdmCreateInvitation(testLog(), "org1", "admin1", "new@example.com", "superuser")
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusInvalid, "kind is different")
}

func TestSerAcceptInvitation(t *testing.T) {
	token := "raw-token"
	invitation := &model.Invitation{ID: "i1", OrgID: "org1", Email: "new@example.com", Role: model.RoleMember,
		Status: model.InvitationStatusPending, TokenHash: utils.HashToken(token),
		ExpiresAt: time.Now().UTC().AddDate(0, 0, 1)}

	storageMock := genmocks.Storage{}
	storageMock.On("FindInvitationByTokenHash", utils.HashToken(token)).Return(invitation, nil)
	storageMock.On("PerformTransaction", mock.Anything).Return(func(transaction func(storage.TransactionContext) error) error {
		return transaction(nil)
	})
	storageMock.On("UpdateInvitationStatus", mock.Anything, "i1", model.InvitationStatusPending,
		model.InvitationStatusAccepted, mock.AnythingOfType("time.Time")).Return(true, nil)
	storageMock.On("InsertMember", mock.Anything, mock.AnythingOfType("model.Member")).Return(nil)
	storageMock.On("InsertAuditEvent", mock.AnythingOfType("model.AuditEvent")).Return(nil)
	coreAPIs := testCoreAPIs(&storageMock, nil, nil)

	member, err := coreAPIs.Services.SerAcceptInvitation(testLog(), token, "user1")
	assert.NilError(t, err)
	assert.Equal(t, member.OrgID, "org1", "org is different")
	assert.Equal(t, member.Email, "new@example.com", "email is different")
	assert.Equal(t, member.Role, model.RoleMember, "role is different")
	assert.Equal(t, member.UserID, "user1", "user is different")
}

func TestSerAcceptInvitationExpired(t *testing.T) {
	token := "raw-token"
	invitation := &model.Invitation{ID: "i1", OrgID: "org1", Status: model.InvitationStatusPending,
		TokenHash: utils.HashToken(token), ExpiresAt: time.Now().UTC().Add(-time.Hour)}

	storageMock := genmocks.Storage{}
	storageMock.On("FindInvitationByTokenHash", utils.HashToken(token)).Return(invitation, nil)
	coreAPIs := testCoreAPIs(&storageMock, nil, nil)

	_, err := coreAPIs.Services.SerAcceptInvitation(testLog(), token, "user1")
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusExpired, "kind is different")
	storageMock.AssertNotCalled(t, "InsertMember")
}

func TestSerAcceptInvitationRevokedWinsRace(t *testing.T) {
	token := "raw-token"
	invitation := &model.Invitation{ID: "i1", OrgID: "org1", Status: model.InvitationStatusPending,
		TokenHash: utils.HashToken(token), ExpiresAt: time.Now().UTC().AddDate(0, 0, 1)}

	storageMock := genmocks.Storage{}
	storageMock.On("FindInvitationByTokenHash", utils.HashToken(token)).Return(invitation, nil)
	storageMock.On("PerformTransaction", mock.Anything).Return(func(transaction func(storage.TransactionContext) error) error {
		return transaction(nil)
	})
	//the revoke got there first
	storageMock.On("UpdateInvitationStatus", mock.Anything, "i1", model.InvitationStatusPending,
		model.InvitationStatusAccepted, mock.AnythingOfType("time.Time")).Return(false, nil)
	coreAPIs := testCoreAPIs(&storageMock, nil, nil)

	_, err := coreAPIs.Services.SerAcceptInvitation(testLog(), token, "user1")
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusConflict, "kind is different")
	//no member may be created when the acceptance loses
	storageMock.AssertNotCalled(t, "InsertMember")
}

func TestSerAcceptInvitationAlreadyMember(t *testing.T) {
	token := "raw-token"
	invitation := &model.Invitation{ID: "i1", OrgID: "org1", Status: model.InvitationStatusPending,
		TokenHash: utils.HashToken(token), ExpiresAt: time.Now().UTC().AddDate(0, 0, 1)}

	storageMock := genmocks.Storage{}
	storageMock.On("FindInvitationByTokenHash", utils.HashToken(token)).Return(invitation, nil)
	storageMock.On("PerformTransaction", mock.Anything).Return(func(transaction func(storage.TransactionContext) error) error {
		return transaction(nil)
	})
	storageMock.On("UpdateInvitationStatus", mock.Anything, "i1", model.InvitationStatusPending,
		model.InvitationStatusAccepted, mock.AnythingOfType("time.Time")).Return(true, nil)
	//the user already holds a membership in the org - the unique
	//(org_id, user_id) index rejects the insert as a conflict
	storageMock.On("InsertMember", mock.Anything, mock.AnythingOfType("model.Member")).
		Return(model.Kinded(model.StatusConflict, errors.New("duplicate key")))
	coreAPIs := testCoreAPIs(&storageMock, nil, nil)

	_, err := coreAPIs.Services.SerAcceptInvitation(testLog(), token, "user1")
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusConflict, "kind is different")
}

func TestSerAcceptInvitationUnknownToken(t *testing.T) {
	storageMock := genmocks.Storage{}
	storageMock.On("FindInvitationByTokenHash", mock.AnythingOfType("string")).Return(nil, nil)
	coreAPIs := testCoreAPIs(&storageMock, nil, nil)

	_, err := coreAPIs.Services.SerAcceptInvitation(testLog(), "unknown", "user1")
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusNotFound, "kind is different")
}

func TestAdmRevokeInvitation(t *testing.T) {
	invitation := &model.Invitation{ID: "i1", OrgID: "org1", Status: model.InvitationStatusPending}

	storageMock := genmocks.Storage{}
	storageMock.On("FindInvitationByID", "org1", "i1").Return(invitation, nil)
	storageMock.On("UpdateInvitationStatus", mock.Anything, "i1", model.InvitationStatusPending,
		model.InvitationStatusRevoked, mock.AnythingOfType("time.Time")).Return(true, nil)
	storageMock.On("InsertAuditEvent", mock.AnythingOfType("model.AuditEvent")).Return(nil)
	coreAPIs := testCoreAPIs(&storageMock, nil, nil)

	err := coreAPIs.Administration.AdmRevokeInvitation(testLog(), "org1", "admin1", "i1")
	assert.NilError(t, err)

	//second case - the invitation was accepted in the meantime
	storageMock2 := genmocks.Storage{}
	storageMock2.On("FindInvitationByID", "org1", "i1").Return(invitation, nil)
	storageMock2.On("UpdateInvitationStatus", mock.Anything, "i1", model.InvitationStatusPending,
		model.InvitationStatusRevoked, mock.AnythingOfType("time.Time")).Return(false, nil)
	coreAPIs = testCoreAPIs(&storageMock2, nil, nil)

	err = coreAPIs.Administration.AdmRevokeInvitation(testLog(), "org1", "admin1", "i1")
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusConflict, "kind is different")
}

func TestSerProcessDeliveryFeedback(t *testing.T) {
	storageMock := genmocks.Storage{}
	storageMock.On("SetInvitationEmailBounced", "new@example.com", true).Return(int64(1), nil)
	coreAPIs := testCoreAPIs(&storageMock, nil, nil)

	err := coreAPIs.Services.SerProcessDeliveryFeedback(testLog(), "new@example.com", true)
	assert.NilError(t, err)
	storageMock.AssertCalled(t, "SetInvitationEmailBounced", "new@example.com", true)
}
