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
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypePermissionPack permission pack type
	TypePermissionPack logutils.MessageDataType = "permission pack"
)

//PermissionPack represents a named, versioned bundle of default grants
//	The pack catalog is read only - applying a pack copies its defaults into
//	Permission and ModuleView rows for a member. Packs are loaded once at
//	startup and never mutated afterwards.
type PermissionPack struct {
	ID      string
	Name    string
	Version string

	//defaults per role
	Roles map[Role]PackRoleDefaults
}

//PackRoleDefaults holds one role's default grants within a pack
type PackRoleDefaults struct {
	Modules map[Module]PackModuleDefaults
}

//PackModuleDefaults holds the default grants for one module
type PackModuleDefaults struct {
	Actions []Action

	//default view configuration copied into the member's ModuleView row
	Subviews []string
	Layout   string
}

//Allows checks whether the pack grants (module, action) for the given role
func (p PermissionPack) Allows(role Role, module Module, action Action) bool {
	roleDefaults, ok := p.Roles[role]
	if !ok {
		return false
	}
	moduleDefaults, ok := roleDefaults.Modules[module]
	if !ok {
		return false
	}
	for _, allowed := range moduleDefaults.Actions {
		if allowed == action {
			return true
		}
	}
	return false
}

//DefaultViewConfig is the declarative per-module view configuration a pack
//carries for one role
type DefaultViewConfig struct {
	Module   Module
	Subviews []string
	Layout   string
}

//ViewDefaults gives the declarative view configurations for the given role
func (p PermissionPack) ViewDefaults(role Role) []DefaultViewConfig {
	roleDefaults, ok := p.Roles[role]
	if !ok {
		return nil
	}
	configs := make([]DefaultViewConfig, 0, len(roleDefaults.Modules))
	for _, module := range AllModules {
		moduleDefaults, ok := roleDefaults.Modules[module]
		if !ok {
			continue
		}
		configs = append(configs, DefaultViewConfig{Module: module, Subviews: moduleDefaults.Subviews, Layout: moduleDefaults.Layout})
	}
	return configs
}
