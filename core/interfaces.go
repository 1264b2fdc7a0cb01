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
	"access-building-block/driven/storage"

	"github.com/rokwire/logging-library-go/v2/logs"
)

//Services exposes APIs for the driver adapters serving the access gateway
type Services interface {
	SerGetMemberByUser(l *logs.Log, orgID string, userID string) (*model.Member, error)

	SerResolvePermission(l *logs.Log, orgID string, memberID string, module model.Module, action model.Action, subviewKey *string) (bool, error)
	SerCheckAccess(l *logs.Log, orgID string, memberID string, module model.Module, action model.Action,
		subviewKey *string, projectID *string, level model.AccessLevel) (bool, error)
	SerGetEffectiveMatrix(l *logs.Log, orgID string, memberID string) (model.EffectiveMatrix, error)

	SerGetModuleViews(l *logs.Log, orgID string, memberID string) ([]model.ModuleView, error)
	SerUpdateModuleView(l *logs.Log, orgID string, memberID string, module model.Module, subviewsEnabled []string, layout string) (*model.ModuleView, error)

	SerValidateShareToken(l *logs.Log, token string) (model.ShareTokenStatus, *model.ShareLink, error)

	SerRequestApproval(l *logs.Log, orgID string, actorMemberID string, resourceType string, resourceID string,
		projectID *string, comment string) (*model.Approval, error)
	SerDecideApproval(l *logs.Log, orgID string, approvalID string, actorMemberID string,
		decision model.ApprovalStatus, comment string) (*model.Approval, error)
	SerListApprovals(l *logs.Log, orgID string, filter model.ApprovalsFilter) ([]model.Approval, error)

	SerAcceptInvitation(l *logs.Log, token string, userID string) (*model.Member, error)
	SerProcessDeliveryFeedback(l *logs.Log, email string, bounced bool) error
}

//Administration exposes administration APIs for the driver adapters
type Administration interface {
	AdmGetMembers(l *logs.Log, orgID string) ([]model.Member, error)
	AdmGetMember(l *logs.Log, orgID string, memberID string) (*model.Member, error)

	AdmApplyPermissionPack(l *logs.Log, orgID string, actorMemberID string, memberID string, packID string) error
	AdmBulkUpdatePermissions(l *logs.Log, orgID string, actorMemberID string, memberID string, updates []model.PermissionUpdate) error
	AdmGetPermissions(l *logs.Log, orgID string, memberID string) ([]model.Permission, error)
	AdmGetPermissionPacks(l *logs.Log) []model.PermissionPack

	AdmGrantProjectAccess(l *logs.Log, orgID string, actorMemberID string, memberID string, projectID string, level model.AccessLevel) (*model.ProjectAccessGrant, error)
	AdmRevokeProjectAccess(l *logs.Log, orgID string, actorMemberID string, memberID string, projectID string) error
	AdmListProjectAccess(l *logs.Log, orgID string, memberID string) ([]model.ProjectAccessGrant, error)

	AdmCreateShareLink(l *logs.Log, orgID string, actorMemberID string, resourceType string, resourceID string,
		expiresInDays *int, permissions []model.Action) (*model.ShareLink, string, error)
	AdmRevokeShareLink(l *logs.Log, orgID string, actorMemberID string, linkID string) error
	AdmListShareLinks(l *logs.Log, orgID string, resourceType *string, resourceID *string) ([]model.ShareLink, error)

	AdmCreateInvitation(l *logs.Log, orgID string, actorMemberID string, email string, role model.Role) (*model.Invitation, error)
	AdmRevokeInvitation(l *logs.Log, orgID string, actorMemberID string, invitationID string) error
	AdmListInvitations(l *logs.Log, orgID string) ([]model.Invitation, error)

	AdmQueryAuditEvents(l *logs.Log, orgID string, filter model.AuditFilter) ([]model.AuditEvent, error)
}

//Storage is used by core to store data - DB storage adapter, file storage adapter etc
type Storage interface {
	PerformTransaction(transaction func(context storage.TransactionContext) error) error

	FindMemberByID(orgID string, memberID string) (*model.Member, error)
	FindMemberByUser(orgID string, userID string) (*model.Member, error)
	FindMemberByEmail(orgID string, email string) (*model.Member, error)
	FindMembers(orgID string) ([]model.Member, error)
	InsertMember(context storage.TransactionContext, member model.Member) error
	UpdateMemberPack(context storage.TransactionContext, orgID string, memberID string, packID string) error

	FindPermissions(orgID string, memberID string) ([]model.Permission, error)
	DeletePermissions(context storage.TransactionContext, orgID string, memberID string) error
	InsertPermissions(context storage.TransactionContext, permissions []model.Permission) error
	SavePermission(context storage.TransactionContext, permission model.Permission) error

	FindModuleViews(orgID string, memberID string) ([]model.ModuleView, error)
	DeleteModuleViews(context storage.TransactionContext, orgID string, memberID string) error
	InsertModuleViews(context storage.TransactionContext, views []model.ModuleView) error
	SaveModuleView(view model.ModuleView) error

	FindProjectAccessGrant(orgID string, memberID string, projectID string) (*model.ProjectAccessGrant, error)
	FindProjectAccessGrants(orgID string, memberID string) ([]model.ProjectAccessGrant, error)
	SaveProjectAccessGrant(grant model.ProjectAccessGrant) error
	DeleteProjectAccessGrant(orgID string, memberID string, projectID string) (bool, error)

	InsertShareLink(link model.ShareLink) error
	FindShareLinkByID(orgID string, id string) (*model.ShareLink, error)
	FindShareLinkByTokenHash(tokenHash string) (*model.ShareLink, error)
	FindShareLinks(orgID string, resourceType *string, resourceID *string) ([]model.ShareLink, error)
	RecordShareLinkAccess(id string, accessedAt time.Time) error
	RevokeShareLink(id string, revokedAt time.Time) (bool, error)

	InsertApproval(approval model.Approval) error
	FindApprovalByID(orgID string, id string) (*model.Approval, error)
	FindOpenApproval(orgID string, resourceType string, resourceID string) (*model.Approval, error)
	FindApprovals(orgID string, filter model.ApprovalsFilter) ([]model.Approval, error)
	DecideApproval(orgID string, id string, decision model.ApprovalStatus, decidedBy string, comment string, decidedAt time.Time) (bool, error)

	InsertInvitation(invitation model.Invitation) error
	FindInvitationByID(orgID string, id string) (*model.Invitation, error)
	FindInvitationByTokenHash(tokenHash string) (*model.Invitation, error)
	FindPendingInvitation(orgID string, email string) (*model.Invitation, error)
	FindInvitations(orgID string) ([]model.Invitation, error)
	UpdateInvitationStatus(context storage.TransactionContext, id string, from model.InvitationStatus, to model.InvitationStatus, updatedAt time.Time) (bool, error)
	SetInvitationEmailBounced(email string, bounced bool) (int64, error)

	InsertAuditEvent(event model.AuditEvent) error
	FindAuditEvents(orgID string, filter model.AuditFilter) ([]model.AuditEvent, error)
}

//PackCatalog gives read access to the immutable permission pack catalog
//loaded once at startup
type PackCatalog interface {
	GetPack(id string) *model.PermissionPack
	DefaultPack() *model.PermissionPack
	ListPacks() []model.PermissionPack
}

//Emailer is used by core to send emails
type Emailer interface {
	Send(toEmail string, subject string, body string, attachmentFilename *string) error
}
