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

	genmocks "access-building-block/core/mocks"
	"access-building-block/core/model"

	"github.com/stretchr/testify/mock"
	"gotest.tools/assert"
)

func TestSerRequestApproval(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOpenApproval", "org1", "document", "doc1").Return(nil, nil)
	storage.On("InsertApproval", mock.AnythingOfType("model.Approval")).Return(nil)
	storage.On("InsertAuditEvent", mock.AnythingOfType("model.AuditEvent")).Return(nil)
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	approval, err := coreAPIs.Services.SerRequestApproval(testLog(), "org1", "m1", "document", "doc1", nil, "please review")
	assert.NilError(t, err)
	assert.Equal(t, approval.Status, model.ApprovalStatusRequested, "status is different")
	assert.Equal(t, approval.RequestedBy, "m1", "requester is different")
}

func TestSerRequestApprovalAlreadyOpen(t *testing.T) {
	open := &model.Approval{ID: "a1", OrgID: "org1", ResourceType: "document", ResourceID: "doc1",
		Status: model.ApprovalStatusRequested}

	storage := genmocks.Storage{}
	storage.On("FindOpenApproval", "org1", "document", "doc1").Return(open, nil)
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	//one open approval per resource
	_, err := coreAPIs.Services.SerRequestApproval(testLog(), "org1", "m2", "document", "doc1", nil, "")
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusConflict, "kind is different")
	storage.AssertNotCalled(t, "InsertApproval")
}

func TestSerDecideApproval(t *testing.T) {
	requested := &model.Approval{ID: "a1", OrgID: "org1", ResourceType: "document", ResourceID: "doc1",
		Status: model.ApprovalStatusRequested, RequestedBy: "m1"}

	storage := genmocks.Storage{}
	storage.On("FindApprovalByID", "org1", "a1").Return(requested, nil)
	storage.On("DecideApproval", "org1", "a1", model.ApprovalStatusApproved, "m2", "looks good", mock.AnythingOfType("time.Time")).Return(true, nil)
	storage.On("InsertAuditEvent", mock.AnythingOfType("model.AuditEvent")).Return(nil)
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	decided, err := coreAPIs.Services.SerDecideApproval(testLog(), "org1", "a1", "m2", model.ApprovalStatusApproved, "looks good")
	assert.NilError(t, err)
	assert.Equal(t, decided.Status, model.ApprovalStatusApproved, "status is different")
	assert.Equal(t, *decided.DecidedBy, "m2", "decider is different")
	if decided.DateDecided == nil {
		t.Error("decision instant must be set")
	}
}

func TestSerDecideApprovalSelf(t *testing.T) {
	requested := &model.Approval{ID: "a1", OrgID: "org1", Status: model.ApprovalStatusRequested, RequestedBy: "m1"}

	storage := genmocks.Storage{}
	storage.On("FindApprovalByID", "org1", "a1").Return(requested, nil)
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	//the requester cannot decide their own approval
	_, err := coreAPIs.Services.SerDecideApproval(testLog(), "org1", "a1", "m1", model.ApprovalStatusApproved, "")
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusForbidden, "kind is different")
	storage.AssertNotCalled(t, "DecideApproval")
}

func TestSerDecideApprovalAlreadyDecided(t *testing.T) {
	decidedBy := "m2"
	decided := &model.Approval{ID: "a1", OrgID: "org1", Status: model.ApprovalStatusApproved,
		RequestedBy: "m1", DecidedBy: &decidedBy}

	storage := genmocks.Storage{}
	storage.On("FindApprovalByID", "org1", "a1").Return(decided, nil)
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	_, err := coreAPIs.Services.SerDecideApproval(testLog(), "org1", "a1", "m3", model.ApprovalStatusRejected, "")
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusConflict, "kind is different")
}

func TestSerDecideApprovalLostRace(t *testing.T) {
	requested := &model.Approval{ID: "a1", OrgID: "org1", Status: model.ApprovalStatusRequested, RequestedBy: "m1"}

	storage := genmocks.Storage{}
	storage.On("FindApprovalByID", "org1", "a1").Return(requested, nil)
	//another decision slipped in between the read and the swap
	storage.On("DecideApproval", "org1", "a1", model.ApprovalStatusRejected, "m3", "", mock.AnythingOfType("time.Time")).Return(false, nil)
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	_, err := coreAPIs.Services.SerDecideApproval(testLog(), "org1", "a1", "m3", model.ApprovalStatusRejected, "")
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusConflict, "the loser of the race must observe a conflict")
}

func TestSerDecideApprovalInvalidDecision(t *testing.T) {
	storage := genmocks.Storage{}
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	//requested is not a decision
	_, err := coreAPIs.Services.SerDecideApproval(testLog(), "org1", "a1", "m2", model.ApprovalStatusRequested, "")
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusInvalid, "kind is different")
	storage.AssertNotCalled(t, "FindApprovalByID")
}

func TestSerListApprovals(t *testing.T) {
	status := model.ApprovalStatusRequested
	filter := model.ApprovalsFilter{Status: &status, Limit: 100}

	storage := genmocks.Storage{}
	storage.On("FindApprovals", "org1", filter).Return([]model.Approval{{ID: "a1"}}, nil)
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	approvals, err := coreAPIs.Services.SerListApprovals(testLog(), "org1", model.ApprovalsFilter{Status: &status})
	assert.NilError(t, err)
	assert.Equal(t, len(approvals), 1, "result is different")

	//second case - unknown status
	bad := model.ApprovalStatus("pending")
	_, err = coreAPIs.Services.SerListApprovals(testLog(), "org1", model.ApprovalsFilter{Status: &bad})
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusInvalid, "kind is different")
}
