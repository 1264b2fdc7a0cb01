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

package storage

import (
	"access-building-block/core/model"
)

//legacy role names still present in documents written before the role
//rename. They are mapped on read and never written back.
func roleFromStorage(value string) model.Role {
	switch value {
	case "owner":
		return model.RoleAdmin
	case "collaborator":
		return model.RoleMember
	case "viewer":
		return model.RoleGuest
	}
	return model.Role(value)
}

//Member
func memberFromStorage(item *member) *model.Member {
	if item == nil {
		return nil
	}
	return &model.Member{ID: item.ID, OrgID: item.OrgID, UserID: item.UserID, Email: item.Email,
		Role: roleFromStorage(item.Role), Status: model.MemberStatus(item.Status), IsOwner: item.IsOwner,
		PackID: item.PackID, DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func membersFromStorage(itemsList []member) []model.Member {
	items := make([]model.Member, len(itemsList))
	for i := range itemsList {
		items[i] = *memberFromStorage(&itemsList[i])
	}
	return items
}

func memberToStorage(item *model.Member) *member {
	if item == nil {
		return nil
	}
	return &member{ID: item.ID, OrgID: item.OrgID, UserID: item.UserID, Email: item.Email,
		Role: string(item.Role), Status: string(item.Status), IsOwner: item.IsOwner,
		PackID: item.PackID, DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

//Invitation
func invitationFromStorage(item *invitation) *model.Invitation {
	if item == nil {
		return nil
	}
	return &model.Invitation{ID: item.ID, OrgID: item.OrgID, Email: item.Email, Role: roleFromStorage(item.Role),
		Status: model.InvitationStatus(item.Status), TokenHash: item.TokenHash, InvitedBy: item.InvitedBy,
		EmailBounced: item.EmailBounced, ExpiresAt: item.ExpiresAt, DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func invitationsFromStorage(itemsList []invitation) []model.Invitation {
	items := make([]model.Invitation, len(itemsList))
	for i := range itemsList {
		items[i] = *invitationFromStorage(&itemsList[i])
	}
	return items
}

func invitationToStorage(item *model.Invitation) *invitation {
	if item == nil {
		return nil
	}
	return &invitation{ID: item.ID, OrgID: item.OrgID, Email: item.Email, Role: string(item.Role),
		Status: string(item.Status), TokenHash: item.TokenHash, InvitedBy: item.InvitedBy,
		EmailBounced: item.EmailBounced, ExpiresAt: item.ExpiresAt, DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

//Permission
func permissionFromStorage(item *permission) *model.Permission {
	if item == nil {
		return nil
	}
	return &model.Permission{ID: item.ID, OrgID: item.OrgID, MemberID: item.MemberID,
		Module: model.Module(item.Module), Action: model.Action(item.Action), Allowed: item.Allowed,
		Scope: model.PermissionScope(item.Scope), SubviewKey: item.SubviewKey,
		DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func permissionsFromStorage(itemsList []permission) []model.Permission {
	items := make([]model.Permission, len(itemsList))
	for i := range itemsList {
		items[i] = *permissionFromStorage(&itemsList[i])
	}
	return items
}

func permissionToStorage(item *model.Permission) *permission {
	if item == nil {
		return nil
	}
	return &permission{ID: item.ID, OrgID: item.OrgID, MemberID: item.MemberID,
		Module: string(item.Module), Action: string(item.Action), Allowed: item.Allowed,
		Scope: string(item.Scope), SubviewKey: item.SubviewKey,
		DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

//ModuleView
func moduleViewFromStorage(item *moduleView) *model.ModuleView {
	if item == nil {
		return nil
	}
	return &model.ModuleView{ID: item.ID, OrgID: item.OrgID, MemberID: item.MemberID,
		Module: model.Module(item.Module), SubviewsEnabled: item.SubviewsEnabled, Layout: item.Layout,
		DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func moduleViewsFromStorage(itemsList []moduleView) []model.ModuleView {
	items := make([]model.ModuleView, len(itemsList))
	for i := range itemsList {
		items[i] = *moduleViewFromStorage(&itemsList[i])
	}
	return items
}

func moduleViewToStorage(item *model.ModuleView) *moduleView {
	if item == nil {
		return nil
	}
	return &moduleView{ID: item.ID, OrgID: item.OrgID, MemberID: item.MemberID,
		Module: string(item.Module), SubviewsEnabled: item.SubviewsEnabled, Layout: item.Layout,
		DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

//ProjectAccessGrant
func projectGrantFromStorage(item *projectGrant) *model.ProjectAccessGrant {
	if item == nil {
		return nil
	}
	return &model.ProjectAccessGrant{ID: item.ID, OrgID: item.OrgID, MemberID: item.MemberID,
		ProjectID: item.ProjectID, AccessLevel: model.AccessLevel(item.AccessLevel),
		DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func projectGrantsFromStorage(itemsList []projectGrant) []model.ProjectAccessGrant {
	items := make([]model.ProjectAccessGrant, len(itemsList))
	for i := range itemsList {
		items[i] = *projectGrantFromStorage(&itemsList[i])
	}
	return items
}

//ShareLink
func shareLinkFromStorage(item *shareLink) *model.ShareLink {
	if item == nil {
		return nil
	}
	permissions := make([]model.Action, len(item.Permissions))
	for i, action := range item.Permissions {
		permissions[i] = model.Action(action)
	}
	return &model.ShareLink{ID: item.ID, OrgID: item.OrgID, ResourceType: item.ResourceType, ResourceID: item.ResourceID,
		TokenHash: item.TokenHash, Permissions: permissions, ExpiresAt: item.ExpiresAt, RevokedAt: item.RevokedAt,
		AccessCount: item.AccessCount, LastAccessedAt: item.LastAccessedAt,
		CreatedBy: item.CreatedBy, DateCreated: item.DateCreated}
}

func shareLinksFromStorage(itemsList []shareLink) []model.ShareLink {
	items := make([]model.ShareLink, len(itemsList))
	for i := range itemsList {
		items[i] = *shareLinkFromStorage(&itemsList[i])
	}
	return items
}

func shareLinkToStorage(item *model.ShareLink) *shareLink {
	if item == nil {
		return nil
	}
	permissions := make([]string, len(item.Permissions))
	for i, action := range item.Permissions {
		permissions[i] = string(action)
	}
	return &shareLink{ID: item.ID, OrgID: item.OrgID, ResourceType: item.ResourceType, ResourceID: item.ResourceID,
		TokenHash: item.TokenHash, Permissions: permissions, ExpiresAt: item.ExpiresAt, RevokedAt: item.RevokedAt,
		AccessCount: item.AccessCount, LastAccessedAt: item.LastAccessedAt,
		CreatedBy: item.CreatedBy, DateCreated: item.DateCreated}
}

//Approval
func approvalFromStorage(item *approval) *model.Approval {
	if item == nil {
		return nil
	}
	return &model.Approval{ID: item.ID, OrgID: item.OrgID, ResourceType: item.ResourceType, ResourceID: item.ResourceID,
		ProjectID: item.ProjectID, Status: model.ApprovalStatus(item.Status), RequestedBy: item.RequestedBy,
		Comment: item.Comment, DecidedBy: item.DecidedBy, DecisionComment: item.DecisionComment,
		DateCreated: item.DateCreated, DateDecided: item.DateDecided}
}

func approvalsFromStorage(itemsList []approval) []model.Approval {
	items := make([]model.Approval, len(itemsList))
	for i := range itemsList {
		items[i] = *approvalFromStorage(&itemsList[i])
	}
	return items
}

func approvalToStorage(item *model.Approval) *approval {
	if item == nil {
		return nil
	}
	return &approval{ID: item.ID, OrgID: item.OrgID, ResourceType: item.ResourceType, ResourceID: item.ResourceID,
		ProjectID: item.ProjectID, Status: string(item.Status), RequestedBy: item.RequestedBy,
		Comment: item.Comment, DecidedBy: item.DecidedBy, DecisionComment: item.DecisionComment,
		DateCreated: item.DateCreated, DateDecided: item.DateDecided}
}

//AuditEvent
func auditEventFromStorage(item *auditEvent) *model.AuditEvent {
	if item == nil {
		return nil
	}
	return &model.AuditEvent{ID: item.ID, OrgID: item.OrgID, ActorMemberID: item.ActorMemberID,
		ActionType: item.ActionType, ResourceType: item.ResourceType, ResourceID: item.ResourceID,
		Meta: item.Meta, DateCreated: item.DateCreated}
}

func auditEventsFromStorage(itemsList []auditEvent) []model.AuditEvent {
	items := make([]model.AuditEvent, len(itemsList))
	for i := range itemsList {
		items[i] = *auditEventFromStorage(&itemsList[i])
	}
	return items
}

func auditEventToStorage(item *model.AuditEvent) *auditEvent {
	if item == nil {
		return nil
	}
	return &auditEvent{ID: item.ID, OrgID: item.OrgID, ActorMemberID: item.ActorMemberID,
		ActionType: item.ActionType, ResourceType: item.ResourceType, ResourceID: item.ResourceID,
		Meta: item.Meta, DateCreated: item.DateCreated}
}
