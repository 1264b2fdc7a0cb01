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

//Package packcatalog loads the permission pack catalog from a YAML file at
//startup. The catalog is read only for the lifetime of the process, so the
//loaded packs are served without locking.
package packcatalog

import (
	"os"

	"access-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"gopkg.in/yaml.v2"
)

type packsFile struct {
	Default string     `yaml:"default"`
	Packs   []packItem `yaml:"packs"`
}

type packItem struct {
	ID      string                       `yaml:"id"`
	Name    string                       `yaml:"name"`
	Version string                       `yaml:"version"`
	Roles   map[string]map[string]grants `yaml:"roles"`
}

type grants struct {
	Actions  []string `yaml:"actions"`
	Subviews []string `yaml:"subviews"`
	Layout   string   `yaml:"layout"`
}

//Adapter implements the PackCatalog interface
type Adapter struct {
	packs     map[string]*model.PermissionPack
	order     []string
	defaultID string
}

//GetPack gives the pack with the given id, or nil
func (a *Adapter) GetPack(id string) *model.PermissionPack {
	return a.packs[id]
}

//DefaultPack gives the catalog's default pack
func (a *Adapter) DefaultPack() *model.PermissionPack {
	return a.packs[a.defaultID]
}

//ListPacks gives all packs in catalog order
func (a *Adapter) ListPacks() []model.PermissionPack {
	packs := make([]model.PermissionPack, 0, len(a.order))
	for _, id := range a.order {
		packs = append(packs, *a.packs[id])
	}
	return packs
}

//NewCatalogAdapter loads and validates the pack catalog from the given YAML
//file. Unknown roles, modules or actions fail the load - a catalog typo must
//never become a silent deny at resolve time.
func NewCatalogAdapter(path string) (*Adapter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionRead, "packs file", &logutils.FieldArgs{"path": path}, err)
	}

	var file packsFile
	err = yaml.Unmarshal(data, &file)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionUnmarshal, "packs file", &logutils.FieldArgs{"path": path}, err)
	}
	if len(file.Packs) == 0 {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypePermissionPack, &logutils.FieldArgs{"path": path})
	}

	packs := make(map[string]*model.PermissionPack, len(file.Packs))
	order := make([]string, 0, len(file.Packs))
	for _, item := range file.Packs {
		if item.ID == "" {
			return nil, errors.ErrorData(logutils.StatusMissing, model.TypePermissionPack, &logutils.FieldArgs{"field": "id"})
		}
		if _, exists := packs[item.ID]; exists {
			return nil, errors.ErrorData("duplicate", model.TypePermissionPack, &logutils.FieldArgs{"id": item.ID})
		}

		pack, err := packFromFile(item)
		if err != nil {
			return nil, err
		}
		packs[item.ID] = pack
		order = append(order, item.ID)
	}

	defaultID := file.Default
	if defaultID == "" {
		defaultID = order[0]
	}
	if _, ok := packs[defaultID]; !ok {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypePermissionPack, &logutils.FieldArgs{"default": defaultID})
	}

	return &Adapter{packs: packs, order: order, defaultID: defaultID}, nil
}

func packFromFile(item packItem) (*model.PermissionPack, error) {
	roles := make(map[model.Role]model.PackRoleDefaults, len(item.Roles))
	for roleName, moduleGrants := range item.Roles {
		role := model.Role(roleName)
		if !role.Valid() {
			return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeRole,
				&logutils.FieldArgs{"pack": item.ID, "role": roleName})
		}

		modules := make(map[model.Module]model.PackModuleDefaults, len(moduleGrants))
		for moduleName, moduleDefaults := range moduleGrants {
			module := model.Module(moduleName)
			if !module.Valid() {
				return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeModule,
					&logutils.FieldArgs{"pack": item.ID, "role": roleName, "module": moduleName})
			}

			actions := make([]model.Action, 0, len(moduleDefaults.Actions))
			for _, actionName := range moduleDefaults.Actions {
				action := model.Action(actionName)
				if !action.Valid() {
					return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeAction,
						&logutils.FieldArgs{"pack": item.ID, "role": roleName, "module": moduleName, "action": actionName})
				}
				actions = append(actions, action)
			}

			modules[module] = model.PackModuleDefaults{Actions: actions,
				Subviews: moduleDefaults.Subviews, Layout: moduleDefaults.Layout}
		}
		roles[role] = model.PackRoleDefaults{Modules: modules}
	}

	return &model.PermissionPack{ID: item.ID, Name: item.Name, Version: item.Version, Roles: roles}, nil
}
