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
	"fmt"
	"time"

	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeMember member type
	TypeMember logutils.MessageDataType = "member"
	//TypeRole role type
	TypeRole logutils.MessageDataType = "role"
)

//Role is the coarse capability tier of a member within an organization
type Role string

const (
	//RoleAdmin admin role
	RoleAdmin Role = "admin"
	//RoleMember member role
	RoleMember Role = "member"
	//RoleGuest guest role - additionally project scoped
	RoleGuest Role = "guest"
)

//Valid checks if the role is one of the closed set
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleGuest:
		return true
	}
	return false
}

//MemberStatus is the lifecycle status of a member
type MemberStatus string

const (
	//MemberStatusActive active member
	MemberStatusActive MemberStatus = "active"
	//MemberStatusInvited invited member
	MemberStatusInvited MemberStatus = "invited"
)

//Member represents a user's membership within one organization
//	Exactly one member exists per user per organization.
//	The IsOwner flag marks the founding identity - an owner member always
//	bypasses permission checks and can never be demoted or removed through
//	the permission API.
type Member struct {
	ID    string
	OrgID string

	UserID string
	Email  string

	Role    Role
	Status  MemberStatus
	IsOwner bool

	//PackID is the currently applied permission pack; empty means the
	//catalog's default pack
	PackID string

	DateCreated time.Time
	DateUpdated *time.Time
}

func (m Member) String() string {
	return fmt.Sprintf("[ID:%s\tOrgID:%s\tUserID:%s\tRole:%s\tOwner:%v]", m.ID, m.OrgID, m.UserID, m.Role, m.IsOwner)
}
