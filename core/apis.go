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
	"access-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/logs"
)

//APIs exposes to the drivers adapters access to the core functionality
type APIs struct {
	Services       Services       //expose to the drivers adapters
	Administration Administration //expose to the drivers adapters

	app *application
}

//Start starts the core part of the application
func (c *APIs) Start() {
	c.app.start()
}

//GetVersion gives the service version
func (c *APIs) GetVersion() string {
	return c.app.version
}

//NewCoreAPIs creates new APIs
func NewCoreAPIs(env string, version string, build string, host string, storage Storage, catalog PackCatalog, emailer Emailer, logger *logs.Logger) *APIs {
	//add application instance
	application := application{env: env, version: version, build: build, host: host,
		storage: storage, catalog: catalog, emailer: emailer, logger: logger}

	//add coreAPIs instance
	servicesImpl := &servicesImpl{app: &application}
	administrationImpl := &administrationImpl{app: &application}

	coreAPIs := APIs{Services: servicesImpl, Administration: administrationImpl, app: &application}

	return &coreAPIs
}

///

//servicesImpl
type servicesImpl struct {
	app *application
}

func (s *servicesImpl) SerGetMemberByUser(l *logs.Log, orgID string, userID string) (*model.Member, error) {
	return s.app.serGetMemberByUser(l, orgID, userID)
}

func (s *servicesImpl) SerResolvePermission(l *logs.Log, orgID string, memberID string, module model.Module, action model.Action, subviewKey *string) (bool, error) {
	return s.app.serResolvePermission(l, orgID, memberID, module, action, subviewKey)
}

func (s *servicesImpl) SerCheckAccess(l *logs.Log, orgID string, memberID string, module model.Module, action model.Action,
	subviewKey *string, projectID *string, level model.AccessLevel) (bool, error) {
	return s.app.serCheckAccess(l, orgID, memberID, module, action, subviewKey, projectID, level)
}

func (s *servicesImpl) SerGetEffectiveMatrix(l *logs.Log, orgID string, memberID string) (model.EffectiveMatrix, error) {
	return s.app.serGetEffectiveMatrix(l, orgID, memberID)
}

func (s *servicesImpl) SerGetModuleViews(l *logs.Log, orgID string, memberID string) ([]model.ModuleView, error) {
	return s.app.serGetModuleViews(l, orgID, memberID)
}

func (s *servicesImpl) SerUpdateModuleView(l *logs.Log, orgID string, memberID string, module model.Module, subviewsEnabled []string, layout string) (*model.ModuleView, error) {
	return s.app.serUpdateModuleView(l, orgID, memberID, module, subviewsEnabled, layout)
}

func (s *servicesImpl) SerValidateShareToken(l *logs.Log, token string) (model.ShareTokenStatus, *model.ShareLink, error) {
	return s.app.serValidateShareToken(l, token)
}

func (s *servicesImpl) SerRequestApproval(l *logs.Log, orgID string, actorMemberID string, resourceType string, resourceID string,
	projectID *string, comment string) (*model.Approval, error) {
	return s.app.serRequestApproval(l, orgID, actorMemberID, resourceType, resourceID, projectID, comment)
}

func (s *servicesImpl) SerDecideApproval(l *logs.Log, orgID string, approvalID string, actorMemberID string,
	decision model.ApprovalStatus, comment string) (*model.Approval, error) {
	return s.app.serDecideApproval(l, orgID, approvalID, actorMemberID, decision, comment)
}

func (s *servicesImpl) SerListApprovals(l *logs.Log, orgID string, filter model.ApprovalsFilter) ([]model.Approval, error) {
	return s.app.serListApprovals(l, orgID, filter)
}

func (s *servicesImpl) SerAcceptInvitation(l *logs.Log, token string, userID string) (*model.Member, error) {
	return s.app.serAcceptInvitation(l, token, userID)
}

func (s *servicesImpl) SerProcessDeliveryFeedback(l *logs.Log, email string, bounced bool) error {
	return s.app.serProcessDeliveryFeedback(l, email, bounced)
}

///

//administrationImpl
type administrationImpl struct {
	app *application
}

func (s *administrationImpl) AdmGetMembers(l *logs.Log, orgID string) ([]model.Member, error) {
	return s.app.admGetMembers(l, orgID)
}

func (s *administrationImpl) AdmGetMember(l *logs.Log, orgID string, memberID string) (*model.Member, error) {
	return s.app.admGetMember(l, orgID, memberID)
}

func (s *administrationImpl) AdmApplyPermissionPack(l *logs.Log, orgID string, actorMemberID string, memberID string, packID string) error {
	return s.app.admApplyPermissionPack(l, orgID, actorMemberID, memberID, packID)
}

func (s *administrationImpl) AdmBulkUpdatePermissions(l *logs.Log, orgID string, actorMemberID string, memberID string, updates []model.PermissionUpdate) error {
	return s.app.admBulkUpdatePermissions(l, orgID, actorMemberID, memberID, updates)
}

func (s *administrationImpl) AdmGetPermissions(l *logs.Log, orgID string, memberID string) ([]model.Permission, error) {
	return s.app.admGetPermissions(l, orgID, memberID)
}

func (s *administrationImpl) AdmGetPermissionPacks(l *logs.Log) []model.PermissionPack {
	return s.app.admGetPermissionPacks(l)
}

func (s *administrationImpl) AdmGrantProjectAccess(l *logs.Log, orgID string, actorMemberID string, memberID string, projectID string, level model.AccessLevel) (*model.ProjectAccessGrant, error) {
	return s.app.admGrantProjectAccess(l, orgID, actorMemberID, memberID, projectID, level)
}

func (s *administrationImpl) AdmRevokeProjectAccess(l *logs.Log, orgID string, actorMemberID string, memberID string, projectID string) error {
	return s.app.admRevokeProjectAccess(l, orgID, actorMemberID, memberID, projectID)
}

func (s *administrationImpl) AdmListProjectAccess(l *logs.Log, orgID string, memberID string) ([]model.ProjectAccessGrant, error) {
	return s.app.admListProjectAccess(l, orgID, memberID)
}

func (s *administrationImpl) AdmCreateShareLink(l *logs.Log, orgID string, actorMemberID string, resourceType string, resourceID string,
	expiresInDays *int, permissions []model.Action) (*model.ShareLink, string, error) {
	return s.app.admCreateShareLink(l, orgID, actorMemberID, resourceType, resourceID, expiresInDays, permissions)
}

func (s *administrationImpl) AdmRevokeShareLink(l *logs.Log, orgID string, actorMemberID string, linkID string) error {
	return s.app.admRevokeShareLink(l, orgID, actorMemberID, linkID)
}

func (s *administrationImpl) AdmListShareLinks(l *logs.Log, orgID string, resourceType *string, resourceID *string) ([]model.ShareLink, error) {
	return s.app.admListShareLinks(l, orgID, resourceType, resourceID)
}

func (s *administrationImpl) AdmCreateInvitation(l *logs.Log, orgID string, actorMemberID string, email string, role model.Role) (*model.Invitation, error) {
	return s.app.admCreateInvitation(l, orgID, actorMemberID, email, role)
}

func (s *administrationImpl) AdmRevokeInvitation(l *logs.Log, orgID string, actorMemberID string, invitationID string) error {
	return s.app.admRevokeInvitation(l, orgID, actorMemberID, invitationID)
}

func (s *administrationImpl) AdmListInvitations(l *logs.Log, orgID string) ([]model.Invitation, error) {
	return s.app.admListInvitations(l, orgID)
}

func (s *administrationImpl) AdmQueryAuditEvents(l *logs.Log, orgID string, filter model.AuditFilter) ([]model.AuditEvent, error) {
	return s.app.admQueryAuditEvents(l, orgID, filter)
}
