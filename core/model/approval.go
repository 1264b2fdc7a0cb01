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

package model

import (
	"time"

	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeApproval approval type
	TypeApproval logutils.MessageDataType = "approval"
)

//ApprovalStatus is the state of an approval instance
type ApprovalStatus string

const (
	//ApprovalStatusRequested initial state
	ApprovalStatusRequested ApprovalStatus = "requested"
	//ApprovalStatusApproved terminal state
	ApprovalStatusApproved ApprovalStatus = "approved"
	//ApprovalStatusRejected terminal state
	ApprovalStatusRejected ApprovalStatus = "rejected"
	//ApprovalStatusChangesRequested terminal state for this instance - a new
	//cycle on the same resource is a new approval
	ApprovalStatusChangesRequested ApprovalStatus = "changes_requested"
)

//ValidDecision checks if the status is a valid decision for a requested approval
func (s ApprovalStatus) ValidDecision() bool {
	switch s {
	case ApprovalStatusApproved, ApprovalStatusRejected, ApprovalStatusChangesRequested:
		return true
	}
	return false
}

//Approval represents a request/decision record implementing sign-off
//workflows over arbitrary resources
type Approval struct {
	ID    string
	OrgID string

	ResourceType string
	ResourceID   string
	ProjectID    *string

	Status ApprovalStatus

	RequestedBy string
	Comment     string

	DecidedBy       *string
	DecisionComment string

	DateCreated time.Time
	DateDecided *time.Time
}

//ApprovalsFilter narrows an approvals listing
type ApprovalsFilter struct {
	ResourceType *string
	ProjectID    *string
	Status       *ApprovalStatus
	Limit        int
}
