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

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

//serGetModuleViews gives the member's stored view configurations, filled in
//with the pack defaults for modules without a stored row. Module views are
//cosmetic and never feed authorization decisions.
func (app *application) serGetModuleViews(l *logs.Log, orgID string, memberID string) ([]model.ModuleView, error) {
	member, err := app.storage.FindMemberByID(orgID, memberID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeMember, nil, err)
	}
	if member == nil {
		return nil, model.Kinded(model.StatusNotFound, errors.ErrorData(logutils.StatusMissing, model.TypeMember, &logutils.FieldArgs{"id": memberID}))
	}

	stored, err := app.storage.FindModuleViews(orgID, memberID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeModuleView, nil, err)
	}

	byModule := make(map[model.Module]model.ModuleView, len(stored))
	for _, view := range stored {
		byModule[view.Module] = view
	}

	views := make([]model.ModuleView, 0, len(model.AllModules))
	defaults := app.packFor(member).ViewDefaults(member.Role)
	for _, config := range defaults {
		if view, ok := byModule[config.Module]; ok {
			views = append(views, view)
			continue
		}
		views = append(views, model.ModuleView{OrgID: orgID, MemberID: memberID, Module: config.Module,
			SubviewsEnabled: config.Subviews, Layout: config.Layout})
	}
	return views, nil
}

func (app *application) serUpdateModuleView(l *logs.Log, orgID string, memberID string, module model.Module, subviewsEnabled []string, layout string) (*model.ModuleView, error) {
	if !module.Valid() {
		return nil, model.Kinded(model.StatusInvalid, errors.ErrorData(logutils.StatusInvalid, model.TypeModule, &logutils.FieldArgs{"module": module}))
	}

	member, err := app.storage.FindMemberByID(orgID, memberID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeMember, nil, err)
	}
	if member == nil {
		return nil, model.Kinded(model.StatusNotFound, errors.ErrorData(logutils.StatusMissing, model.TypeMember, &logutils.FieldArgs{"id": memberID}))
	}

	view := model.ModuleView{ID: uuid.NewString(), OrgID: orgID, MemberID: memberID, Module: module,
		SubviewsEnabled: subviewsEnabled, Layout: layout, DateCreated: time.Now().UTC()}
	err = app.storage.SaveModuleView(view)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionSave, model.TypeModuleView, nil, err)
	}
	return &view, nil
}
