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

	"access-building-block/core"
	"access-building-block/core/model"

	"github.com/gorilla/mux"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	validator "gopkg.in/go-playground/validator.v9"
)

//ServicesApisHandler handles the rest APIs implementation
type ServicesApisHandler struct {
	coreAPIs *core.APIs
}

func (h ServicesApisHandler) getMember(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	if claims.OrgID == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypeClaim, logutils.StringArgs("org_id"), nil, http.StatusForbidden, false)
	}

	member, err := h.coreAPIs.Services.SerGetMemberByUser(l, claims.OrgID, claims.UserID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeMember, nil, err, statusForError(err), showDetails(err))
	}

	data, err := json.Marshal(memberToResponse(*member))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeMember, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ServicesApisHandler) resolvePermission(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	module := r.URL.Query().Get("module")
	if module == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypeQueryParam, logutils.StringArgs("module"), nil, http.StatusBadRequest, false)
	}
	action := r.URL.Query().Get("action")
	if action == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypeQueryParam, logutils.StringArgs("action"), nil, http.StatusBadRequest, false)
	}
	var subviewKey *string
	if subview := r.URL.Query().Get("subview"); subview != "" {
		subviewKey = &subview
	}

	allowed, err := h.coreAPIs.Services.SerResolvePermission(l, claims.OrgID, claims.MemberID,
		model.Module(module), model.Action(action), subviewKey)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypePermission, nil, err, statusForError(err), showDetails(err))
	}

	data, err := json.Marshal(map[string]bool{"allowed": allowed})
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypePermission, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

type checkAccessRequest struct {
	Module     string  `json:"module" validate:"required"`
	Action     string  `json:"action" validate:"required"`
	SubviewKey *string `json:"subview_key"`
	ProjectID  *string `json:"project_id"`
	Level      string  `json:"level" validate:"required"`
}

func (h ServicesApisHandler) checkAccess(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	var requestData checkAccessRequest
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}
	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	allowed, err := h.coreAPIs.Services.SerCheckAccess(l, claims.OrgID, claims.MemberID,
		model.Module(requestData.Module), model.Action(requestData.Action), requestData.SubviewKey,
		requestData.ProjectID, model.AccessLevel(requestData.Level))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypePermission, nil, err, statusForError(err), showDetails(err))
	}

	data, err := json.Marshal(map[string]bool{"allowed": allowed})
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypePermission, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ServicesApisHandler) getEffectiveMatrix(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	matrix, err := h.coreAPIs.Services.SerGetEffectiveMatrix(l, claims.OrgID, claims.MemberID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypePermission, nil, err, statusForError(err), showDetails(err))
	}

	data, err := json.Marshal(matrix)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypePermission, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ServicesApisHandler) getModuleViews(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	views, err := h.coreAPIs.Services.SerGetModuleViews(l, claims.OrgID, claims.MemberID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeModuleView, nil, err, statusForError(err), showDetails(err))
	}

	data, err := json.Marshal(moduleViewsToResponse(views))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeModuleView, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

type updateModuleViewRequest struct {
	SubviewsEnabled []string `json:"subviews_enabled" validate:"required"`
	Layout          string   `json:"layout" validate:"required"`
}

func (h ServicesApisHandler) updateModuleView(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	params := mux.Vars(r)
	module := params["module"]
	if len(module) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("module"), nil, http.StatusBadRequest, false)
	}

	var requestData updateModuleViewRequest
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}
	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	view, err := h.coreAPIs.Services.SerUpdateModuleView(l, claims.OrgID, claims.MemberID,
		model.Module(module), requestData.SubviewsEnabled, requestData.Layout)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUpdate, model.TypeModuleView, nil, err, statusForError(err), showDetails(err))
	}

	data, err := json.Marshal(moduleViewToResponse(*view))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeModuleView, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

type validateShareTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

type validateShareTokenResponse struct {
	Status string             `json:"status"`
	Link   *shareLinkResponse `json:"link,omitempty"`
}

//validateShareToken is the single anonymous entry point of the gateway -
//the raw token is carried in the body so it never lands in access logs
func (h ServicesApisHandler) validateShareToken(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	var requestData validateShareTokenRequest
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}
	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	status, link, err := h.coreAPIs.Services.SerValidateShareToken(l, requestData.Token)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, model.TypeShareLink, nil, err, statusForError(err), showDetails(err))
	}

	responseData := validateShareTokenResponse{Status: string(status)}
	if link != nil {
		linkData := shareLinkToResponse(*link)
		responseData.Link = &linkData
	}
	data, err := json.Marshal(responseData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeShareLink, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

type requestApprovalRequest struct {
	ResourceType string  `json:"resource_type" validate:"required"`
	ResourceID   string  `json:"resource_id" validate:"required"`
	ProjectID    *string `json:"project_id"`
	Comment      string  `json:"comment"`
}

func (h ServicesApisHandler) requestApproval(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	var requestData requestApprovalRequest
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}
	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	approval, err := h.coreAPIs.Services.SerRequestApproval(l, claims.OrgID, claims.MemberID,
		requestData.ResourceType, requestData.ResourceID, requestData.ProjectID, requestData.Comment)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionCreate, model.TypeApproval, nil, err, statusForError(err), showDetails(err))
	}

	data, err := json.Marshal(approvalToResponse(*approval))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeApproval, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

type decideApprovalRequest struct {
	Decision string `json:"decision" validate:"required"`
	Comment  string `json:"comment"`
}

func (h ServicesApisHandler) decideApproval(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]
	if len(id) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	var requestData decideApprovalRequest
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}
	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	approval, err := h.coreAPIs.Services.SerDecideApproval(l, claims.OrgID, id, claims.MemberID,
		model.ApprovalStatus(requestData.Decision), requestData.Comment)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUpdate, model.TypeApproval, nil, err, statusForError(err), showDetails(err))
	}

	data, err := json.Marshal(approvalToResponse(*approval))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeApproval, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ServicesApisHandler) listApprovals(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	var filter model.ApprovalsFilter
	query := r.URL.Query()
	if resourceType := query.Get("resource_type"); resourceType != "" {
		filter.ResourceType = &resourceType
	}
	if projectID := query.Get("project_id"); projectID != "" {
		filter.ProjectID = &projectID
	}
	if status := query.Get("status"); status != "" {
		approvalStatus := model.ApprovalStatus(status)
		filter.Status = &approvalStatus
	}
	if limit := query.Get("limit"); limit != "" {
		limitVal, err := strconv.Atoi(limit)
		if err != nil {
			return l.HTTPResponseErrorData(logutils.StatusInvalid, logutils.TypeQueryParam, logutils.StringArgs("limit"), err, http.StatusBadRequest, false)
		}
		filter.Limit = limitVal
	}

	approvals, err := h.coreAPIs.Services.SerListApprovals(l, claims.OrgID, filter)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeApproval, nil, err, statusForError(err), showDetails(err))
	}

	data, err := json.Marshal(approvalsToResponse(approvals))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeApproval, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

type acceptInvitationRequest struct {
	Token string `json:"token" validate:"required"`
}

func (h ServicesApisHandler) acceptInvitation(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	var requestData acceptInvitationRequest
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}
	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	member, err := h.coreAPIs.Services.SerAcceptInvitation(l, requestData.Token, claims.UserID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUpdate, model.TypeInvitation, nil, err, statusForError(err), showDetails(err))
	}

	data, err := json.Marshal(memberToResponse(*member))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeMember, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

type deliveryFeedbackRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Bounced bool   `json:"bounced"`
}

func (h ServicesApisHandler) processDeliveryFeedback(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	var requestData deliveryFeedbackRequest
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}
	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	err = h.coreAPIs.Services.SerProcessDeliveryFeedback(l, requestData.Email, requestData.Bounced)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUpdate, model.TypeInvitation, nil, err, statusForError(err), showDetails(err))
	}

	return l.HTTPResponseSuccess()
}

//NewServicesApisHandler creates new rest services Handler instance
func NewServicesApisHandler(coreAPIs *core.APIs) ServicesApisHandler {
	return ServicesApisHandler{coreAPIs: coreAPIs}
}
