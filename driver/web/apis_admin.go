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

package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"access-building-block/core"
	"access-building-block/core/model"

	"github.com/gorilla/mux"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	validator "gopkg.in/go-playground/validator.v9"
)

//AdminApisHandler handles the admin rest APIs implementation
type AdminApisHandler struct {
	coreAPIs *core.APIs
}

func (h AdminApisHandler) getMembers(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	members, err := h.coreAPIs.Administration.AdmGetMembers(l, claims.OrgID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeMember, nil, err, statusForError(err), showDetails(err))
	}

	data, err := json.Marshal(membersToResponse(members))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeMember, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h AdminApisHandler) getMember(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]
	if len(id) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	member, err := h.coreAPIs.Administration.AdmGetMember(l, claims.OrgID, id)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeMember, &logutils.FieldArgs{"id": id}, err, statusForError(err), showDetails(err))
	}

	data, err := json.Marshal(memberToResponse(*member))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeMember, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

type applyPackRequest struct {
	PackID string `json:"pack_id" validate:"required"`
}

func (h AdminApisHandler) applyPermissionPack(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]
	if len(id) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	var requestData applyPackRequest
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}
	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	err = h.coreAPIs.Administration.AdmApplyPermissionPack(l, claims.OrgID, claims.MemberID, id, requestData.PackID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUpdate, model.TypePermissionPack,
			&logutils.FieldArgs{"member_id": id, "pack_id": requestData.PackID}, err, statusForError(err), showDetails(err))
	}

	return l.HTTPResponseSuccess()
}

type permissionUpdateRequest struct {
	Module  string `json:"module" validate:"required"`
	Action  string `json:"action" validate:"required"`
	Allowed bool   `json:"allowed"`

	Scope      string `json:"scope" validate:"required"`
	SubviewKey string `json:"subview_key"`
}

func (h AdminApisHandler) bulkUpdatePermissions(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]
	if len(id) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	var requestData []permissionUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}
	validate := validator.New()
	for _, update := range requestData {
		err = validate.Struct(update)
		if err != nil {
			return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
		}
	}

	updates := make([]model.PermissionUpdate, len(requestData))
	for i, update := range requestData {
		updates[i] = model.PermissionUpdate{Module: model.Module(update.Module), Action: model.Action(update.Action),
			Allowed: update.Allowed, Scope: model.PermissionScope(update.Scope), SubviewKey: update.SubviewKey}
	}

	err = h.coreAPIs.Administration.AdmBulkUpdatePermissions(l, claims.OrgID, claims.MemberID, id, updates)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUpdate, model.TypePermission, &logutils.FieldArgs{"member_id": id}, err, statusForError(err), showDetails(err))
	}

	return l.HTTPResponseSuccess()
}

func (h AdminApisHandler) getPermissions(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]
	if len(id) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	permissions, err := h.coreAPIs.Administration.AdmGetPermissions(l, claims.OrgID, id)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypePermission, &logutils.FieldArgs{"member_id": id}, err, statusForError(err), showDetails(err))
	}

	data, err := json.Marshal(permissionsToResponse(permissions))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypePermission, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h AdminApisHandler) getPermissionPacks(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	packs := h.coreAPIs.Administration.AdmGetPermissionPacks(l)

	data, err := json.Marshal(packsToResponse(packs))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypePermissionPack, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

type grantProjectAccessRequest struct {
	ProjectID string `json:"project_id" validate:"required"`
	Level     string `json:"level" validate:"required"`
}

func (h AdminApisHandler) grantProjectAccess(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]
	if len(id) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	var requestData grantProjectAccessRequest
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}
	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	grant, err := h.coreAPIs.Administration.AdmGrantProjectAccess(l, claims.OrgID, claims.MemberID, id,
		requestData.ProjectID, model.AccessLevel(requestData.Level))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionCreate, model.TypeProjectAccessGrant,
			&logutils.FieldArgs{"member_id": id, "project_id": requestData.ProjectID}, err, statusForError(err), showDetails(err))
	}

	data, err := json.Marshal(projectGrantToResponse(*grant))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeProjectAccessGrant, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h AdminApisHandler) revokeProjectAccess(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]
	projectID := params["project-id"]
	if len(id) <= 0 || len(projectID) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id, project-id"), nil, http.StatusBadRequest, false)
	}

	err := h.coreAPIs.Administration.AdmRevokeProjectAccess(l, claims.OrgID, claims.MemberID, id, projectID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionDelete, model.TypeProjectAccessGrant,
			&logutils.FieldArgs{"member_id": id, "project_id": projectID}, err, statusForError(err), showDetails(err))
	}

	return l.HTTPResponseSuccess()
}

func (h AdminApisHandler) listProjectAccess(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]
	if len(id) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	grants, err := h.coreAPIs.Administration.AdmListProjectAccess(l, claims.OrgID, id)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeProjectAccessGrant, &logutils.FieldArgs{"member_id": id}, err, statusForError(err), showDetails(err))
	}

	data, err := json.Marshal(projectGrantsToResponse(grants))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeProjectAccessGrant, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

type createShareLinkRequest struct {
	ResourceType  string   `json:"resource_type" validate:"required"`
	ResourceID    string   `json:"resource_id" validate:"required"`
	ExpiresInDays *int     `json:"expires_in_days"`
	Permissions   []string `json:"permissions"`
}

type createShareLinkResponse struct {
	Link  shareLinkResponse `json:"link"`
	Token string            `json:"token"`
}

func (h AdminApisHandler) createShareLink(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	var requestData createShareLinkRequest
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}
	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	permissions := make([]model.Action, len(requestData.Permissions))
	for i, action := range requestData.Permissions {
		permissions[i] = model.Action(action)
	}

	link, token, err := h.coreAPIs.Administration.AdmCreateShareLink(l, claims.OrgID, claims.MemberID,
		requestData.ResourceType, requestData.ResourceID, requestData.ExpiresInDays, permissions)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionCreate, model.TypeShareLink, nil, err, statusForError(err), showDetails(err))
	}

	//the raw token is returned exactly once and never stored
	responseData := createShareLinkResponse{Link: shareLinkToResponse(*link), Token: token}
	data, err := json.Marshal(responseData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeShareLink, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h AdminApisHandler) revokeShareLink(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]
	if len(id) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	err := h.coreAPIs.Administration.AdmRevokeShareLink(l, claims.OrgID, claims.MemberID, id)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUpdate, model.TypeShareLink, &logutils.FieldArgs{"id": id}, err, statusForError(err), showDetails(err))
	}

	return l.HTTPResponseSuccess()
}

func (h AdminApisHandler) listShareLinks(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	var resourceType *string
	var resourceID *string
	query := r.URL.Query()
	if value := query.Get("resource_type"); value != "" {
		resourceType = &value
	}
	if value := query.Get("resource_id"); value != "" {
		resourceID = &value
	}

	links, err := h.coreAPIs.Administration.AdmListShareLinks(l, claims.OrgID, resourceType, resourceID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeShareLink, nil, err, statusForError(err), showDetails(err))
	}

	data, err := json.Marshal(shareLinksToResponse(links))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeShareLink, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

type createInvitationRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

func (h AdminApisHandler) createInvitation(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	var requestData createInvitationRequest
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}
	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	invitation, err := h.coreAPIs.Administration.AdmCreateInvitation(l, claims.OrgID, claims.MemberID,
		requestData.Email, model.Role(requestData.Role))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionCreate, model.TypeInvitation, nil, err, statusForError(err), showDetails(err))
	}

	data, err := json.Marshal(invitationToResponse(*invitation))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeInvitation, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h AdminApisHandler) revokeInvitation(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]
	if len(id) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	err := h.coreAPIs.Administration.AdmRevokeInvitation(l, claims.OrgID, claims.MemberID, id)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUpdate, model.TypeInvitation, &logutils.FieldArgs{"id": id}, err, statusForError(err), showDetails(err))
	}

	return l.HTTPResponseSuccess()
}

func (h AdminApisHandler) listInvitations(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	invitations, err := h.coreAPIs.Administration.AdmListInvitations(l, claims.OrgID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeInvitation, nil, err, statusForError(err), showDetails(err))
	}

	data, err := json.Marshal(invitationsToResponse(invitations))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeInvitation, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h AdminApisHandler) queryAuditEvents(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	var filter model.AuditFilter
	query := r.URL.Query()
	if actionType := query.Get("action_type"); actionType != "" {
		filter.ActionType = &actionType
	}
	if resourceType := query.Get("resource_type"); resourceType != "" {
		filter.ResourceType = &resourceType
	}
	if since := query.Get("since"); since != "" {
		sinceVal, err := time.Parse(time.RFC3339, since)
		if err != nil {
			return l.HTTPResponseErrorData(logutils.StatusInvalid, logutils.TypeQueryParam, logutils.StringArgs("since"), err, http.StatusBadRequest, false)
		}
		filter.Since = &sinceVal
	}
	if limit := query.Get("limit"); limit != "" {
		limitVal, err := strconv.Atoi(limit)
		if err != nil {
			return l.HTTPResponseErrorData(logutils.StatusInvalid, logutils.TypeQueryParam, logutils.StringArgs("limit"), err, http.StatusBadRequest, false)
		}
		filter.Limit = limitVal
	}

	events, err := h.coreAPIs.Administration.AdmQueryAuditEvents(l, claims.OrgID, filter)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeAuditEvent, nil, err, statusForError(err), showDetails(err))
	}

	data, err := json.Marshal(auditEventsToResponse(events))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeAuditEvent, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

//NewAdminApisHandler creates new admin rest Handler instance
func NewAdminApisHandler(coreAPIs *core.APIs) AdminApisHandler {
	return AdminApisHandler{coreAPIs: coreAPIs}
}
