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
	//TypeModuleView module view type
	TypeModuleView logutils.MessageDataType = "module view"
)

//ModuleView represents per-member visibility and layout configuration for
//one module. Purely cosmetic - never consulted for authorization decisions.
type ModuleView struct {
	ID    string
	OrgID string

	MemberID string
	Module   Module

	SubviewsEnabled []string
	Layout          string

	DateCreated time.Time
	DateUpdated *time.Time
}
