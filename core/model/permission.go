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
	//TypePermission permission type
	TypePermission logutils.MessageDataType = "permission"
	//TypeModule module type
	TypeModule logutils.MessageDataType = "module"
	//TypeAction action type
	TypeAction logutils.MessageDataType = "action"
)

//Module is a feature area of the product - the first part of a capability key
type Module string

const (
	//ModuleProjects projects module
	ModuleProjects Module = "projects"
	//ModuleTasks tasks module
	ModuleTasks Module = "tasks"
	//ModuleClients clients module
	ModuleClients Module = "clients"
	//ModuleDocuments documents module
	ModuleDocuments Module = "documents"
	//ModuleBacklogs backlogs module
	ModuleBacklogs Module = "backlogs"
	//ModuleBilling billing module
	ModuleBilling Module = "billing"
	//ModuleReports reports module
	ModuleReports Module = "reports"
	//ModuleSettings settings module
	ModuleSettings Module = "settings"
)

//AllModules is the closed enumeration of modules
var AllModules = []Module{ModuleProjects, ModuleTasks, ModuleClients, ModuleDocuments,
	ModuleBacklogs, ModuleBilling, ModuleReports, ModuleSettings}

//Valid checks if the module is one of the closed set
func (m Module) Valid() bool {
	for _, module := range AllModules {
		if m == module {
			return true
		}
	}
	return false
}

//Action is an operation kind within a module - the second part of a capability key
type Action string

const (
	//ActionRead read action
	ActionRead Action = "read"
	//ActionCreate create action
	ActionCreate Action = "create"
	//ActionUpdate update action
	ActionUpdate Action = "update"
	//ActionDelete delete action
	ActionDelete Action = "delete"
	//ActionExport export action
	ActionExport Action = "export"
	//ActionShare share action
	ActionShare Action = "share"
)

//AllActions is the closed enumeration of actions
var AllActions = []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete, ActionExport, ActionShare}

//Valid checks if the action is one of the closed set
func (a Action) Valid() bool {
	for _, action := range AllActions {
		if a == action {
			return true
		}
	}
	return false
}

//PermissionScope says whether an explicit override applies to the whole
//module or to a single subview within it
type PermissionScope string

const (
	//PermissionScopeModule module scope
	PermissionScopeModule PermissionScope = "module"
	//PermissionScopeSubview subview scope
	PermissionScopeSubview PermissionScope = "subview"
)

//Permission represents an explicit permission override row
//	At most one row exists per (member, module, action, subviewKey). A
//	subview scoped row takes precedence over a module scoped row for the
//	same action and fully replaces its verdict.
type Permission struct {
	ID    string
	OrgID string

	MemberID string

	Module Module
	Action Action

	Allowed bool

	Scope      PermissionScope
	SubviewKey string //set when Scope is subview

	DateCreated time.Time
	DateUpdated *time.Time
}

func (p Permission) String() string {
	return fmt.Sprintf("[Member:%s\t%s.%s\tAllowed:%v\tScope:%s\tSubview:%s]",
		p.MemberID, p.Module, p.Action, p.Allowed, p.Scope, p.SubviewKey)
}

//PermissionUpdate is one entry of a bulk permission update
type PermissionUpdate struct {
	Module  Module
	Action  Action
	Allowed bool

	Scope      PermissionScope
	SubviewKey string
}

//Validate checks the update against the closed enumerations
func (u PermissionUpdate) Validate() error {
	if !u.Module.Valid() {
		return fmt.Errorf("unknown module %q", u.Module)
	}
	if !u.Action.Valid() {
		return fmt.Errorf("unknown action %q", u.Action)
	}
	switch u.Scope {
	case PermissionScopeModule:
		if u.SubviewKey != "" {
			return fmt.Errorf("subview key set on module scoped update for %s.%s", u.Module, u.Action)
		}
	case PermissionScopeSubview:
		if u.SubviewKey == "" {
			return fmt.Errorf("missing subview key on subview scoped update for %s.%s", u.Module, u.Action)
		}
	default:
		return fmt.Errorf("unknown permission scope %q", u.Scope)
	}
	return nil
}

//EffectiveMatrix is the fully resolved allow/deny matrix for one member
type EffectiveMatrix map[Module]map[Action]bool
