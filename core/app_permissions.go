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

package core

import (
	"time"

	"access-building-block/core/model"
	"access-building-block/driven/storage"

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

func (app *application) serGetMemberByUser(l *logs.Log, orgID string, userID string) (*model.Member, error) {
	member, err := app.storage.FindMemberByUser(orgID, userID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeMember, nil, err)
	}
	if member == nil {
		return nil, model.Kinded(model.StatusNotFound, errors.ErrorData(logutils.StatusMissing, model.TypeMember, &logutils.FieldArgs{"user_id": userID}))
	}
	return member, nil
}

func (app *application) serResolvePermission(l *logs.Log, orgID string, memberID string, module model.Module, action model.Action, subviewKey *string) (bool, error) {
	if !module.Valid() {
		return false, model.Kinded(model.StatusInvalid, errors.ErrorData(logutils.StatusInvalid, model.TypeModule, &logutils.FieldArgs{"module": module}))
	}
	if !action.Valid() {
		return false, model.Kinded(model.StatusInvalid, errors.ErrorData(logutils.StatusInvalid, model.TypeAction, &logutils.FieldArgs{"action": action}))
	}

	member, err := app.storage.FindMemberByID(orgID, memberID)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionFind, model.TypeMember, nil, err)
	}
	if member == nil {
		return false, model.Kinded(model.StatusNotFound, errors.ErrorData(logutils.StatusMissing, model.TypeMember, &logutils.FieldArgs{"id": memberID}))
	}

	return app.resolveForMember(member, module, action, subviewKey)
}

//resolveForMember computes the effective verdict for one capability key.
//Precedence: owner bypass, subview scoped override, module scoped override,
//pack role default, deny. A subview scoped override fully replaces the
//module scoped verdict for the same action.
func (app *application) resolveForMember(member *model.Member, module model.Module, action model.Action, subviewKey *string) (bool, error) {
	if member.IsOwner {
		return true, nil
	}

	permissions, err := app.storage.FindPermissions(member.OrgID, member.ID)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionFind, model.TypePermission, nil, err)
	}

	return app.resolveFromRows(member, permissions, module, action, subviewKey), nil
}

func (app *application) resolveFromRows(member *model.Member, permissions []model.Permission, module model.Module, action model.Action, subviewKey *string) bool {
	if member.IsOwner {
		return true
	}

	var moduleScoped *model.Permission
	for i := range permissions {
		permission := permissions[i]
		if permission.Module != module || permission.Action != action {
			continue
		}
		if permission.Scope == model.PermissionScopeSubview {
			if subviewKey != nil && permission.SubviewKey == *subviewKey {
				return permission.Allowed
			}
			continue
		}
		moduleScoped = &permissions[i]
	}
	if moduleScoped != nil {
		return moduleScoped.Allowed
	}

	return app.packFor(member).Allows(member.Role, module, action)
}

//packFor gives the member's currently applied pack, falling back to the
//catalog default
func (app *application) packFor(member *model.Member) *model.PermissionPack {
	if member.PackID != "" {
		if pack := app.catalog.GetPack(member.PackID); pack != nil {
			return pack
		}
	}
	return app.catalog.DefaultPack()
}

func (app *application) serGetEffectiveMatrix(l *logs.Log, orgID string, memberID string) (model.EffectiveMatrix, error) {
	member, err := app.storage.FindMemberByID(orgID, memberID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeMember, nil, err)
	}
	if member == nil {
		return nil, model.Kinded(model.StatusNotFound, errors.ErrorData(logutils.StatusMissing, model.TypeMember, &logutils.FieldArgs{"id": memberID}))
	}

	permissions, err := app.storage.FindPermissions(orgID, memberID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypePermission, nil, err)
	}

	matrix := make(model.EffectiveMatrix, len(model.AllModules))
	for _, module := range model.AllModules {
		actions := make(map[model.Action]bool, len(model.AllActions))
		for _, action := range model.AllActions {
			actions[action] = app.resolveFromRows(member, permissions, module, action, nil)
		}
		matrix[module] = actions
	}
	return matrix, nil
}

func (app *application) admApplyPermissionPack(l *logs.Log, orgID string, actorMemberID string, memberID string, packID string) error {
	member, err := app.storage.FindMemberByID(orgID, memberID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeMember, nil, err)
	}
	if member == nil {
		return model.Kinded(model.StatusNotFound, errors.ErrorData(logutils.StatusMissing, model.TypeMember, &logutils.FieldArgs{"id": memberID}))
	}
	if member.IsOwner {
		return model.Kinded(model.StatusForbidden, errors.ErrorData("owner", model.TypeMember, &logutils.FieldArgs{"id": memberID}))
	}

	pack := app.catalog.GetPack(packID)
	if pack == nil {
		return model.Kinded(model.StatusInvalid, errors.ErrorData(logutils.StatusInvalid, model.TypePermissionPack, &logutils.FieldArgs{"id": packID}))
	}

	now := time.Now().UTC()

	//the pack defaults copied into explicit rows for the member's role
	permissions := make([]model.Permission, 0)
	roleDefaults := pack.Roles[member.Role]
	for _, module := range model.AllModules {
		moduleDefaults, ok := roleDefaults.Modules[module]
		if !ok {
			continue
		}
		for _, action := range moduleDefaults.Actions {
			permissions = append(permissions, model.Permission{ID: uuid.NewString(), OrgID: orgID, MemberID: memberID,
				Module: module, Action: action, Allowed: true, Scope: model.PermissionScopeModule, DateCreated: now})
		}
	}

	views := make([]model.ModuleView, 0)
	for _, config := range pack.ViewDefaults(member.Role) {
		views = append(views, model.ModuleView{ID: uuid.NewString(), OrgID: orgID, MemberID: memberID,
			Module: config.Module, SubviewsEnabled: config.Subviews, Layout: config.Layout, DateCreated: now})
	}

	//replace-all semantics - concurrent resolves observe either the fully
	//old or the fully new permission set
	transaction := func(context storage.TransactionContext) error {
		err := app.storage.DeletePermissions(context, orgID, memberID)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypePermission, nil, err)
		}
		if len(permissions) > 0 {
			err = app.storage.InsertPermissions(context, permissions)
			if err != nil {
				return errors.WrapErrorAction(logutils.ActionInsert, model.TypePermission, nil, err)
			}
		}

		err = app.storage.DeleteModuleViews(context, orgID, memberID)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypeModuleView, nil, err)
		}
		if len(views) > 0 {
			err = app.storage.InsertModuleViews(context, views)
			if err != nil {
				return errors.WrapErrorAction(logutils.ActionInsert, model.TypeModuleView, nil, err)
			}
		}

		err = app.storage.UpdateMemberPack(context, orgID, memberID, pack.ID)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeMember, nil, err)
		}
		return nil
	}

	err = app.storage.PerformTransaction(transaction)
	if err != nil {
		return err
	}

	app.audit(l, orgID, actorMemberID, model.AuditActionPackApplied, "member", memberID,
		map[string]interface{}{"pack_id": pack.ID, "pack_version": pack.Version})
	return nil
}

func (app *application) admBulkUpdatePermissions(l *logs.Log, orgID string, actorMemberID string, memberID string, updates []model.PermissionUpdate) error {
	if len(updates) == 0 {
		return model.Kinded(model.StatusInvalid, errors.ErrorData(logutils.StatusMissing, model.TypePermission, nil))
	}

	//the whole batch is validated against the closed enumerations before
	//any row is written
	for _, update := range updates {
		if err := update.Validate(); err != nil {
			return model.Kinded(model.StatusInvalid, errors.WrapErrorData(logutils.StatusInvalid, model.TypePermission, nil, err))
		}
	}

	member, err := app.storage.FindMemberByID(orgID, memberID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeMember, nil, err)
	}
	if member == nil {
		return model.Kinded(model.StatusNotFound, errors.ErrorData(logutils.StatusMissing, model.TypeMember, &logutils.FieldArgs{"id": memberID}))
	}
	if member.IsOwner {
		return model.Kinded(model.StatusForbidden, errors.ErrorData("owner", model.TypeMember, &logutils.FieldArgs{"id": memberID}))
	}

	now := time.Now().UTC()
	transaction := func(context storage.TransactionContext) error {
		for _, update := range updates {
			permission := model.Permission{ID: uuid.NewString(), OrgID: orgID, MemberID: memberID,
				Module: update.Module, Action: update.Action, Allowed: update.Allowed,
				Scope: update.Scope, SubviewKey: update.SubviewKey, DateCreated: now}
			err := app.storage.SavePermission(context, permission)
			if err != nil {
				return errors.WrapErrorAction(logutils.ActionSave, model.TypePermission, nil, err)
			}
		}
		return nil
	}

	err = app.storage.PerformTransaction(transaction)
	if err != nil {
		return err
	}

	app.audit(l, orgID, actorMemberID, model.AuditActionPermissionsUpdated, "member", memberID,
		map[string]interface{}{"updates": len(updates)})
	return nil
}

func (app *application) admGetPermissions(l *logs.Log, orgID string, memberID string) ([]model.Permission, error) {
	permissions, err := app.storage.FindPermissions(orgID, memberID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypePermission, nil, err)
	}
	return permissions, nil
}

func (app *application) admGetPermissionPacks(l *logs.Log) []model.PermissionPack {
	return app.catalog.ListPacks()
}
