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
	"time"
)

type member struct {
	ID    string `bson:"_id"`
	OrgID string `bson:"org_id"`

	UserID string `bson:"user_id"`
	Email  string `bson:"email"`

	Role    string `bson:"role"`
	Status  string `bson:"status"`
	IsOwner bool   `bson:"is_owner"`

	PackID string `bson:"pack_id,omitempty"`

	DateCreated time.Time  `bson:"date_created"`
	DateUpdated *time.Time `bson:"date_updated,omitempty"`
}

type invitation struct {
	ID    string `bson:"_id"`
	OrgID string `bson:"org_id"`

	Email string `bson:"email"`
	Role  string `bson:"role"`

	Status    string `bson:"status"`
	TokenHash string `bson:"token_hash"`

	InvitedBy    string `bson:"invited_by"`
	EmailBounced bool   `bson:"email_bounced"`

	ExpiresAt   time.Time  `bson:"expires_at"`
	DateCreated time.Time  `bson:"date_created"`
	DateUpdated *time.Time `bson:"date_updated,omitempty"`
}

type permission struct {
	ID    string `bson:"_id"`
	OrgID string `bson:"org_id"`

	MemberID string `bson:"member_id"`

	Module string `bson:"module"`
	Action string `bson:"action"`

	Allowed bool `bson:"allowed"`

	Scope      string `bson:"scope"`
	SubviewKey string `bson:"subview_key"`

	DateCreated time.Time  `bson:"date_created"`
	DateUpdated *time.Time `bson:"date_updated,omitempty"`
}

type moduleView struct {
	ID    string `bson:"_id"`
	OrgID string `bson:"org_id"`

	MemberID string `bson:"member_id"`
	Module   string `bson:"module"`

	SubviewsEnabled []string `bson:"subviews_enabled"`
	Layout          string   `bson:"layout"`

	DateCreated time.Time  `bson:"date_created"`
	DateUpdated *time.Time `bson:"date_updated,omitempty"`
}

type projectGrant struct {
	ID    string `bson:"_id"`
	OrgID string `bson:"org_id"`

	MemberID  string `bson:"member_id"`
	ProjectID string `bson:"project_id"`

	AccessLevel string `bson:"access_level"`

	DateCreated time.Time  `bson:"date_created"`
	DateUpdated *time.Time `bson:"date_updated,omitempty"`
}

type shareLink struct {
	ID    string `bson:"_id"`
	OrgID string `bson:"org_id"`

	ResourceType string `bson:"resource_type"`
	ResourceID   string `bson:"resource_id"`

	TokenHash   string   `bson:"token_hash"`
	Permissions []string `bson:"permissions"`

	ExpiresAt time.Time  `bson:"expires_at"`
	RevokedAt *time.Time `bson:"revoked_at,omitempty"`

	AccessCount    int64      `bson:"access_count"`
	LastAccessedAt *time.Time `bson:"last_accessed_at,omitempty"`

	CreatedBy   string    `bson:"created_by"`
	DateCreated time.Time `bson:"date_created"`
}

type approval struct {
	ID    string `bson:"_id"`
	OrgID string `bson:"org_id"`

	ResourceType string  `bson:"resource_type"`
	ResourceID   string  `bson:"resource_id"`
	ProjectID    *string `bson:"project_id,omitempty"`

	Status string `bson:"status"`

	RequestedBy string `bson:"requested_by"`
	Comment     string `bson:"comment"`

	DecidedBy       *string `bson:"decided_by,omitempty"`
	DecisionComment string  `bson:"decision_comment"`

	DateCreated time.Time  `bson:"date_created"`
	DateDecided *time.Time `bson:"date_decided,omitempty"`
}

type auditEvent struct {
	ID    string `bson:"_id"`
	OrgID string `bson:"org_id"`

	ActorMemberID string `bson:"actor_member_id"`

	ActionType   string `bson:"action_type"`
	ResourceType string `bson:"resource_type"`
	ResourceID   string `bson:"resource_id"`

	Meta map[string]interface{} `bson:"meta,omitempty"`

	DateCreated time.Time `bson:"date_created"`
}
