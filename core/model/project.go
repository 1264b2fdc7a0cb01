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
	//TypeProjectAccessGrant project access grant type
	TypeProjectAccessGrant logutils.MessageDataType = "project access grant"
)

//AccessLevel is the per-project access tier of a guest grant
type AccessLevel string

const (
	//AccessLevelRead read access
	AccessLevelRead AccessLevel = "read"
	//AccessLevelWrite write access
	AccessLevelWrite AccessLevel = "write"
	//AccessLevelManage manage access
	AccessLevelManage AccessLevel = "manage"
)

var accessLevelRank = map[AccessLevel]int{AccessLevelRead: 1, AccessLevelWrite: 2, AccessLevelManage: 3}

//Valid checks if the access level is one of the closed set
func (l AccessLevel) Valid() bool {
	_, ok := accessLevelRank[l]
	return ok
}

//Covers checks if the level satisfies the requested level
func (l AccessLevel) Covers(requested AccessLevel) bool {
	return accessLevelRank[l] >= accessLevelRank[requested]
}

//ProjectAccessGrant represents an explicit allow-list entry restricting a
//guest member's visibility to one project. Absence of a grant means no
//access to that project regardless of module permissions.
type ProjectAccessGrant struct {
	ID    string
	OrgID string

	MemberID  string
	ProjectID string

	AccessLevel AccessLevel

	DateCreated time.Time
	DateUpdated *time.Time
}
