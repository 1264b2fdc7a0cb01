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

package core

import (
	"time"

	"access-building-block/core/model"

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

func (app *application) serRequestApproval(l *logs.Log, orgID string, actorMemberID string, resourceType string, resourceID string,
	projectID *string, comment string) (*model.Approval, error) {
	if resourceType == "" || resourceID == "" {
		return nil, model.Kinded(model.StatusInvalid, errors.ErrorData(logutils.StatusMissing, model.TypeApproval, nil))
	}

	open, err := app.storage.FindOpenApproval(orgID, resourceType, resourceID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeApproval, nil, err)
	}
	if open != nil {
		return nil, model.Kinded(model.StatusConflict, errors.ErrorData("already requested", model.TypeApproval,
			&logutils.FieldArgs{"resource_type": resourceType, "resource_id": resourceID}))
	}

	approval := model.Approval{ID: uuid.NewString(), OrgID: orgID, ResourceType: resourceType, ResourceID: resourceID,
		ProjectID: projectID, Status: model.ApprovalStatusRequested, RequestedBy: actorMemberID, Comment: comment,
		DateCreated: time.Now().UTC()}
	err = app.storage.InsertApproval(approval)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeApproval, nil, err)
	}

	app.audit(l, orgID, actorMemberID, model.AuditActionApprovalRequested, resourceType, resourceID,
		map[string]interface{}{"approval_id": approval.ID})
	return &approval, nil
}

//serDecideApproval transitions a requested approval to its decision with an
//atomic compare-and-swap on status - of two racing decisions exactly one
//succeeds and the other observes a conflict.
func (app *application) serDecideApproval(l *logs.Log, orgID string, approvalID string, actorMemberID string,
	decision model.ApprovalStatus, comment string) (*model.Approval, error) {
	if !decision.ValidDecision() {
		return nil, model.Kinded(model.StatusInvalid, errors.ErrorData(logutils.StatusInvalid, model.TypeApproval,
			&logutils.FieldArgs{"decision": decision}))
	}

	approval, err := app.storage.FindApprovalByID(orgID, approvalID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeApproval, nil, err)
	}
	if approval == nil {
		return nil, model.Kinded(model.StatusNotFound, errors.ErrorData(logutils.StatusMissing, model.TypeApproval, &logutils.FieldArgs{"id": approvalID}))
	}
	if approval.RequestedBy == actorMemberID {
		return nil, model.Kinded(model.StatusForbidden, errors.ErrorData("self decision", model.TypeApproval, &logutils.FieldArgs{"id": approvalID}))
	}
	if approval.Status != model.ApprovalStatusRequested {
		return nil, model.Kinded(model.StatusConflict, errors.ErrorData("already decided", model.TypeApproval, &logutils.FieldArgs{"id": approvalID}))
	}

	now := time.Now().UTC()
	decided, err := app.storage.DecideApproval(orgID, approvalID, decision, actorMemberID, comment, now)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeApproval, nil, err)
	}
	if !decided {
		//first writer wins - this call lost the race
		return nil, model.Kinded(model.StatusConflict, errors.ErrorData("already decided", model.TypeApproval, &logutils.FieldArgs{"id": approvalID}))
	}

	approval.Status = decision
	approval.DecidedBy = &actorMemberID
	approval.DecisionComment = comment
	approval.DateDecided = &now

	app.audit(l, orgID, actorMemberID, model.AuditActionApprovalDecided, approval.ResourceType, approval.ResourceID,
		map[string]interface{}{"approval_id": approvalID, "decision": string(decision)})
	return approval, nil
}

func (app *application) serListApprovals(l *logs.Log, orgID string, filter model.ApprovalsFilter) ([]model.Approval, error) {
	if filter.Status != nil {
		status := *filter.Status
		if status != model.ApprovalStatusRequested && !status.ValidDecision() {
			return nil, model.Kinded(model.StatusInvalid, errors.ErrorData(logutils.StatusInvalid, model.TypeApproval,
				&logutils.FieldArgs{"status": status}))
		}
	}
	if filter.Limit <= 0 || filter.Limit > maxAuditLimit {
		filter.Limit = defaultAuditLimit
	}

	approvals, err := app.storage.FindApprovals(orgID, filter)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeApproval, nil, err)
	}
	return approvals, nil
}
