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

//serCheckAccess gives the final verdict for a business operation: the
//resolver verdict AND the project scope guard verdict. The guard runs
//before any resource is fetched, so a denied guest never learns whether
//the resource exists.
func (app *application) serCheckAccess(l *logs.Log, orgID string, memberID string, module model.Module, action model.Action,
	subviewKey *string, projectID *string, level model.AccessLevel) (bool, error) {
	if !module.Valid() {
		return false, model.Kinded(model.StatusInvalid, errors.ErrorData(logutils.StatusInvalid, model.TypeModule, &logutils.FieldArgs{"module": module}))
	}
	if !action.Valid() {
		return false, model.Kinded(model.StatusInvalid, errors.ErrorData(logutils.StatusInvalid, model.TypeAction, &logutils.FieldArgs{"action": action}))
	}
	if level == "" {
		level = model.AccessLevelRead
	}
	if !level.Valid() {
		return false, model.Kinded(model.StatusInvalid, errors.ErrorData(logutils.StatusInvalid, model.TypeProjectAccessGrant, &logutils.FieldArgs{"access_level": level}))
	}

	member, err := app.storage.FindMemberByID(orgID, memberID)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionFind, model.TypeMember, nil, err)
	}
	if member == nil {
		return false, model.Kinded(model.StatusNotFound, errors.ErrorData(logutils.StatusMissing, model.TypeMember, &logutils.FieldArgs{"id": memberID}))
	}

	allowed, err := app.resolveForMember(member, module, action, subviewKey)
	if err != nil {
		return false, err
	}
	if !allowed {
		return false, nil
	}

	//the guard is a no-op for non-guest roles
	if member.Role != model.RoleGuest || projectID == nil {
		return true, nil
	}

	grant, err := app.storage.FindProjectAccessGrant(orgID, memberID, *projectID)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionFind, model.TypeProjectAccessGrant, nil, err)
	}
	if grant == nil {
		//no grant means no access regardless of module permissions
		return false, nil
	}
	return grant.AccessLevel.Covers(level), nil
}

func (app *application) admGrantProjectAccess(l *logs.Log, orgID string, actorMemberID string, memberID string, projectID string, level model.AccessLevel) (*model.ProjectAccessGrant, error) {
	if !level.Valid() {
		return nil, model.Kinded(model.StatusInvalid, errors.ErrorData(logutils.StatusInvalid, model.TypeProjectAccessGrant, &logutils.FieldArgs{"access_level": level}))
	}

	member, err := app.storage.FindMemberByID(orgID, memberID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeMember, nil, err)
	}
	if member == nil {
		return nil, model.Kinded(model.StatusNotFound, errors.ErrorData(logutils.StatusMissing, model.TypeMember, &logutils.FieldArgs{"id": memberID}))
	}

	grant := model.ProjectAccessGrant{ID: uuid.NewString(), OrgID: orgID, MemberID: memberID,
		ProjectID: projectID, AccessLevel: level, DateCreated: time.Now().UTC()}
	err = app.storage.SaveProjectAccessGrant(grant)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionSave, model.TypeProjectAccessGrant, nil, err)
	}

	app.audit(l, orgID, actorMemberID, model.AuditActionProjectAccessGranted, "project", projectID,
		map[string]interface{}{"member_id": memberID, "access_level": string(level)})
	return &grant, nil
}

func (app *application) admRevokeProjectAccess(l *logs.Log, orgID string, actorMemberID string, memberID string, projectID string) error {
	deleted, err := app.storage.DeleteProjectAccessGrant(orgID, memberID, projectID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeProjectAccessGrant, nil, err)
	}
	if !deleted {
		return model.Kinded(model.StatusNotFound, errors.ErrorData(logutils.StatusMissing, model.TypeProjectAccessGrant,
			&logutils.FieldArgs{"member_id": memberID, "project_id": projectID}))
	}

	app.audit(l, orgID, actorMemberID, model.AuditActionProjectAccessRevoked, "project", projectID,
		map[string]interface{}{"member_id": memberID})
	return nil
}

func (app *application) admListProjectAccess(l *logs.Log, orgID string, memberID string) ([]model.ProjectAccessGrant, error) {
	grants, err := app.storage.FindProjectAccessGrants(orgID, memberID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeProjectAccessGrant, nil, err)
	}
	return grants, nil
}
