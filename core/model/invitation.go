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
	//TypeInvitation invitation type
	TypeInvitation logutils.MessageDataType = "invitation"
)

//InvitationStatus is the lifecycle status of an invitation
type InvitationStatus string

const (
	//InvitationStatusPending pending invitation
	InvitationStatusPending InvitationStatus = "pending"
	//InvitationStatusAccepted accepted invitation
	InvitationStatusAccepted InvitationStatus = "accepted"
	//InvitationStatusRevoked revoked invitation
	InvitationStatusRevoked InvitationStatus = "revoked"
)

//Invitation represents a pending membership keyed by (organization, email)
//	The invitation token is single use - only its hash is stored. EmailBounced
//	is flipped asynchronously by delivery feedback and never unwinds the
//	invitation itself.
type Invitation struct {
	ID    string
	OrgID string

	Email string
	Role  Role

	Status    InvitationStatus
	TokenHash string

	InvitedBy    string
	EmailBounced bool

	ExpiresAt   time.Time
	DateCreated time.Time
	DateUpdated *time.Time
}

//Expired checks if the invitation is past its expiry instant
func (i Invitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
