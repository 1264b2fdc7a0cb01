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
	//TypeAuditEvent audit event type
	TypeAuditEvent logutils.MessageDataType = "audit event"
)

//Audit action types recorded by the engine
const (
	//AuditActionPackApplied a permission pack was applied to a member
	AuditActionPackApplied = "permissions.pack_applied"
	//AuditActionPermissionsUpdated explicit permission overrides were written
	AuditActionPermissionsUpdated = "permissions.updated"
	//AuditActionProjectAccessGranted a project access grant was created or raised
	AuditActionProjectAccessGranted = "project_access.granted"
	//AuditActionProjectAccessRevoked a project access grant was removed
	AuditActionProjectAccessRevoked = "project_access.revoked"
	//AuditActionShareLinkCreated a share link was issued
	AuditActionShareLinkCreated = "share_link.created"
	//AuditActionShareLinkRevoked a share link was revoked
	AuditActionShareLinkRevoked = "share_link.revoked"
	//AuditActionApprovalRequested an approval was requested
	AuditActionApprovalRequested = "approval.requested"
	//AuditActionApprovalDecided an approval was decided
	AuditActionApprovalDecided = "approval.decided"
	//AuditActionInvitationCreated an invitation was created
	AuditActionInvitationCreated = "invitation.created"
	//AuditActionInvitationAccepted an invitation was accepted
	AuditActionInvitationAccepted = "invitation.accepted"
	//AuditActionInvitationRevoked an invitation was revoked
	AuditActionInvitationRevoked = "invitation.revoked"
)

//AuditEvent represents an immutable record of a privileged action
//	Append only - no update or delete operation exists anywhere in the
//	contract.
type AuditEvent struct {
	ID    string
	OrgID string

	ActorMemberID string

	ActionType   string
	ResourceType string
	ResourceID   string

	Meta map[string]interface{}

	DateCreated time.Time
}

//AuditFilter narrows an audit query
type AuditFilter struct {
	ActionType   *string
	ResourceType *string
	Since        *time.Time
	Limit        int
}
