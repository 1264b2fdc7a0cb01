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
	//TypeShareLink share link type
	TypeShareLink logutils.MessageDataType = "share link"
)

//ShareTokenStatus is the verdict of a share token validation
type ShareTokenStatus string

const (
	//ShareTokenValid the token resolves to a live link
	ShareTokenValid ShareTokenStatus = "valid"
	//ShareTokenExpired the link exists but is past its expiry
	ShareTokenExpired ShareTokenStatus = "expired"
	//ShareTokenRevoked the link exists but has been revoked
	ShareTokenRevoked ShareTokenStatus = "revoked"
	//ShareTokenNotFound no link matches the token
	ShareTokenNotFound ShareTokenStatus = "not_found"
)

//ShareLink represents an opaque, expiring, permission-limited token granting
//anonymous access to one resource
//	The token is unguessable and never derived from resource identifiers;
//	only its hash is stored. A link is immutable once issued except for
//	access bookkeeping and revocation.
type ShareLink struct {
	ID    string
	OrgID string

	ResourceType string
	ResourceID   string

	TokenHash   string
	Permissions []Action

	ExpiresAt time.Time
	RevokedAt *time.Time

	AccessCount    int64
	LastAccessedAt *time.Time

	CreatedBy   string
	DateCreated time.Time
}

//Revoked checks if the link has been revoked
func (s ShareLink) Revoked() bool {
	return s.RevokedAt != nil
}

//Expired checks if the link is past its expiry instant
func (s ShareLink) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
