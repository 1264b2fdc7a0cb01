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

package web

import (
	"time"

	"access-building-block/core/model"
)

//Response shapes for the REST surface. Token hashes never leave the engine -
//raw tokens appear exactly once, in the create response that minted them.

type memberResponse struct {
	ID      string `json:"id"`
	OrgID   string `json:"org_id"`
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Status  string `json:"status"`
	IsOwner bool   `json:"is_owner"`
	PackID  string `json:"pack_id,omitempty"`

	DateCreated time.Time `json:"date_created"`
}

func memberToResponse(item model.Member) memberResponse {
	return memberResponse{ID: item.ID, OrgID: item.OrgID, UserID: item.UserID, Email: item.Email,
		Role: string(item.Role), Status: string(item.Status), IsOwner: item.IsOwner, PackID: item.PackID,
		DateCreated: item.DateCreated}
}

func membersToResponse(items []model.Member) []memberResponse {
	result := make([]memberResponse, len(items))
	for i, item := range items {
		result[i] = memberToResponse(item)
	}
	return result
}

type permissionResponse struct {
	ID       string `json:"id"`
	MemberID string `json:"member_id"`

	Module  string `json:"module"`
	Action  string `json:"action"`
	Allowed bool   `json:"allowed"`

	Scope      string `json:"scope"`
	SubviewKey string `json:"subview_key,omitempty"`
}

func permissionsToResponse(items []model.Permission) []permissionResponse {
	result := make([]permissionResponse, len(items))
	for i, item := range items {
		result[i] = permissionResponse{ID: item.ID, MemberID: item.MemberID, Module: string(item.Module),
			Action: string(item.Action), Allowed: item.Allowed, Scope: string(item.Scope), SubviewKey: item.SubviewKey}
	}
	return result
}

type packResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

func packsToResponse(items []model.PermissionPack) []packResponse {
	result := make([]packResponse, len(items))
	for i, item := range items {
		result[i] = packResponse{ID: item.ID, Name: item.Name, Version: item.Version}
	}
	return result
}

type moduleViewResponse struct {
	Module          string   `json:"module"`
	SubviewsEnabled []string `json:"subviews_enabled"`
	Layout          string   `json:"layout"`
}

func moduleViewToResponse(item model.ModuleView) moduleViewResponse {
	return moduleViewResponse{Module: string(item.Module), SubviewsEnabled: item.SubviewsEnabled, Layout: item.Layout}
}

func moduleViewsToResponse(items []model.ModuleView) []moduleViewResponse {
	result := make([]moduleViewResponse, len(items))
	for i, item := range items {
		result[i] = moduleViewToResponse(item)
	}
	return result
}

type projectGrantResponse struct {
	ID          string    `json:"id"`
	MemberID    string    `json:"member_id"`
	ProjectID   string    `json:"project_id"`
	AccessLevel string    `json:"access_level"`
	DateCreated time.Time `json:"date_created"`
}

func projectGrantToResponse(item model.ProjectAccessGrant) projectGrantResponse {
	return projectGrantResponse{ID: item.ID, MemberID: item.MemberID, ProjectID: item.ProjectID,
		AccessLevel: string(item.AccessLevel), DateCreated: item.DateCreated}
}

func projectGrantsToResponse(items []model.ProjectAccessGrant) []projectGrantResponse {
	result := make([]projectGrantResponse, len(items))
	for i, item := range items {
		result[i] = projectGrantToResponse(item)
	}
	return result
}

type shareLinkResponse struct {
	ID           string   `json:"id"`
	ResourceType string   `json:"resource_type"`
	ResourceID   string   `json:"resource_id"`
	Permissions  []string `json:"permissions"`

	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`

	AccessCount    int64      `json:"access_count"`
	LastAccessedAt *time.Time `json:"last_accessed_at,omitempty"`

	CreatedBy   string    `json:"created_by"`
	DateCreated time.Time `json:"date_created"`
}

func shareLinkToResponse(item model.ShareLink) shareLinkResponse {
	permissions := make([]string, len(item.Permissions))
	for i, action := range item.Permissions {
		permissions[i] = string(action)
	}
	return shareLinkResponse{ID: item.ID, ResourceType: item.ResourceType, ResourceID: item.ResourceID,
		Permissions: permissions, ExpiresAt: item.ExpiresAt, RevokedAt: item.RevokedAt,
		AccessCount: item.AccessCount, LastAccessedAt: item.LastAccessedAt,
		CreatedBy: item.CreatedBy, DateCreated: item.DateCreated}
}

func shareLinksToResponse(items []model.ShareLink) []shareLinkResponse {
	result := make([]shareLinkResponse, len(items))
	for i, item := range items {
		result[i] = shareLinkToResponse(item)
	}
	return result
}

type approvalResponse struct {
	ID           string  `json:"id"`
	ResourceType string  `json:"resource_type"`
	ResourceID   string  `json:"resource_id"`
	ProjectID    *string `json:"project_id,omitempty"`

	Status string `json:"status"`

	RequestedBy string `json:"requested_by"`
	Comment     string `json:"comment,omitempty"`

	DecidedBy       *string `json:"decided_by,omitempty"`
	DecisionComment string  `json:"decision_comment,omitempty"`

	DateCreated time.Time  `json:"date_created"`
	DateDecided *time.Time `json:"date_decided,omitempty"`
}

func approvalToResponse(item model.Approval) approvalResponse {
	return approvalResponse{ID: item.ID, ResourceType: item.ResourceType, ResourceID: item.ResourceID,
		ProjectID: item.ProjectID, Status: string(item.Status), RequestedBy: item.RequestedBy,
		Comment: item.Comment, DecidedBy: item.DecidedBy, DecisionComment: item.DecisionComment,
		DateCreated: item.DateCreated, DateDecided: item.DateDecided}
}

func approvalsToResponse(items []model.Approval) []approvalResponse {
	result := make([]approvalResponse, len(items))
	for i, item := range items {
		result[i] = approvalToResponse(item)
	}
	return result
}

type invitationResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`

	Status       string `json:"status"`
	InvitedBy    string `json:"invited_by"`
	EmailBounced bool   `json:"email_bounced"`

	ExpiresAt   time.Time `json:"expires_at"`
	DateCreated time.Time `json:"date_created"`
}

func invitationToResponse(item model.Invitation) invitationResponse {
	return invitationResponse{ID: item.ID, Email: item.Email, Role: string(item.Role),
		Status: string(item.Status), InvitedBy: item.InvitedBy, EmailBounced: item.EmailBounced,
		ExpiresAt: item.ExpiresAt, DateCreated: item.DateCreated}
}

func invitationsToResponse(items []model.Invitation) []invitationResponse {
	result := make([]invitationResponse, len(items))
	for i, item := range items {
		result[i] = invitationToResponse(item)
	}
	return result
}

type auditEventResponse struct {
	ID            string `json:"id"`
	ActorMemberID string `json:"actor_member_id"`

	ActionType   string `json:"action_type"`
	ResourceType string `json:"resource_type"`
	ResourceID   string `json:"resource_id,omitempty"`

	Meta map[string]interface{} `json:"meta,omitempty"`

	DateCreated time.Time `json:"date_created"`
}

func auditEventsToResponse(items []model.AuditEvent) []auditEventResponse {
	result := make([]auditEventResponse, len(items))
	for i, item := range items {
		result[i] = auditEventResponse{ID: item.ID, ActorMemberID: item.ActorMemberID, ActionType: item.ActionType,
			ResourceType: item.ResourceType, ResourceID: item.ResourceID, Meta: item.Meta, DateCreated: item.DateCreated}
	}
	return result
}
