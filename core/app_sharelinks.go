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
	"access-building-block/utils"

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//defaultShareLinkExpiryDays applies when the caller gives no expiry
	defaultShareLinkExpiryDays = 7
)

//admCreateShareLink issues a share link and gives back the raw token. Only
//the token hash is stored - the raw token is shown once to the caller.
func (app *application) admCreateShareLink(l *logs.Log, orgID string, actorMemberID string, resourceType string, resourceID string,
	expiresInDays *int, permissions []model.Action) (*model.ShareLink, string, error) {
	if resourceType == "" || resourceID == "" {
		return nil, "", model.Kinded(model.StatusInvalid, errors.ErrorData(logutils.StatusMissing, model.TypeShareLink, nil))
	}

	expiryDays := defaultShareLinkExpiryDays
	if expiresInDays != nil {
		if *expiresInDays <= 0 {
			return nil, "", model.Kinded(model.StatusInvalid, errors.ErrorData(logutils.StatusInvalid, model.TypeShareLink,
				&logutils.FieldArgs{"expires_in_days": *expiresInDays}))
		}
		expiryDays = *expiresInDays
	}

	if len(permissions) == 0 {
		permissions = []model.Action{model.ActionRead}
	}
	for _, action := range permissions {
		if !action.Valid() {
			return nil, "", model.Kinded(model.StatusInvalid, errors.ErrorData(logutils.StatusInvalid, model.TypeAction, &logutils.FieldArgs{"action": action}))
		}
	}

	token, err := utils.GenerateAccessToken()
	if err != nil {
		return nil, "", errors.WrapErrorAction(logutils.ActionCreate, model.TypeShareLink, nil, err)
	}

	now := time.Now().UTC()
	link := model.ShareLink{ID: uuid.NewString(), OrgID: orgID, ResourceType: resourceType, ResourceID: resourceID,
		TokenHash: utils.HashToken(token), Permissions: permissions, ExpiresAt: now.AddDate(0, 0, expiryDays),
		CreatedBy: actorMemberID, DateCreated: now}

	err = app.storage.InsertShareLink(link)
	if err != nil {
		return nil, "", errors.WrapErrorAction(logutils.ActionInsert, model.TypeShareLink, nil, err)
	}

	app.audit(l, orgID, actorMemberID, model.AuditActionShareLinkCreated, resourceType, resourceID,
		map[string]interface{}{"share_link_id": link.ID, "expires_at": link.ExpiresAt})
	return &link, token, nil
}

//serValidateShareToken checks a share token in existence, revocation, expiry
//order. A successful validation records the access with an atomic counter
//update; expired and revoked tokens never surface link data.
func (app *application) serValidateShareToken(l *logs.Log, token string) (model.ShareTokenStatus, *model.ShareLink, error) {
	if token == "" {
		return model.ShareTokenNotFound, nil, nil
	}

	link, err := app.storage.FindShareLinkByTokenHash(utils.HashToken(token))
	if err != nil {
		return "", nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeShareLink, nil, err)
	}
	if link == nil {
		return model.ShareTokenNotFound, nil, nil
	}
	if link.Revoked() {
		return model.ShareTokenRevoked, nil, nil
	}
	now := time.Now().UTC()
	if link.Expired(now) {
		return model.ShareTokenExpired, nil, nil
	}

	err = app.storage.RecordShareLinkAccess(link.ID, now)
	if err != nil {
		return "", nil, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeShareLink, nil, err)
	}
	link.AccessCount++
	link.LastAccessedAt = &now
	return model.ShareTokenValid, link, nil
}

//admRevokeShareLink revokes a link. Revoking an already revoked link is a
//no-op success - RevokedAt keeps its original value.
func (app *application) admRevokeShareLink(l *logs.Log, orgID string, actorMemberID string, linkID string) error {
	link, err := app.storage.FindShareLinkByID(orgID, linkID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeShareLink, nil, err)
	}
	if link == nil {
		return model.Kinded(model.StatusNotFound, errors.ErrorData(logutils.StatusMissing, model.TypeShareLink, &logutils.FieldArgs{"id": linkID}))
	}
	if link.Revoked() {
		return nil
	}

	revoked, err := app.storage.RevokeShareLink(linkID, time.Now().UTC())
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeShareLink, nil, err)
	}
	if !revoked {
		//a concurrent revoke won the race - still a success
		return nil
	}

	app.audit(l, orgID, actorMemberID, model.AuditActionShareLinkRevoked, link.ResourceType, link.ResourceID,
		map[string]interface{}{"share_link_id": linkID})
	return nil
}

func (app *application) admListShareLinks(l *logs.Log, orgID string, resourceType *string, resourceID *string) ([]model.ShareLink, error) {
	links, err := app.storage.FindShareLinks(orgID, resourceType, resourceID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeShareLink, nil, err)
	}
	return links, nil
}
