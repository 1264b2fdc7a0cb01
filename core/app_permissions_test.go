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

package core_test

import (
	"testing"

	genmocks "access-building-block/core/mocks"
	"access-building-block/core/model"
	"access-building-block/driven/storage"

	"github.com/stretchr/testify/mock"
	"gotest.tools/assert"
)

func TestSerResolvePermissionOwnerBypass(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindMemberByID", "org1", "m1").Return(&model.Member{ID: "m1", OrgID: "org1", Role: model.RoleMember, IsOwner: true}, nil)
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	//the owner is allowed everything, even what no pack or override grants
	allowed, err := coreAPIs.Services.SerResolvePermission(testLog(), "org1", "m1", model.ModuleBilling, model.ActionDelete, nil)
	assert.NilError(t, err)
	assert.Equal(t, allowed, true, "owner must bypass")

	//permission rows are never consulted for the owner
	storage.AssertNotCalled(t, "FindPermissions")
}

func TestSerResolvePermissionPackDefault(t *testing.T) {
	member := &model.Member{ID: "m1", OrgID: "org1", Role: model.RoleMember}

	storage := genmocks.Storage{}
	storage.On("FindMemberByID", "org1", "m1").Return(member, nil)
	storage.On("FindPermissions", "org1", "m1").Return([]model.Permission{}, nil)
	catalog := genmocks.PackCatalog{}
	catalog.On("DefaultPack").Return(testPack())
	coreAPIs := testCoreAPIs(&storage, &catalog, nil)

	allowed, err := coreAPIs.Services.SerResolvePermission(testLog(), "org1", "m1", model.ModuleTasks, model.ActionCreate, nil)
	assert.NilError(t, err)
	assert.Equal(t, allowed, true, "pack grants tasks.create to members")

	//not granted by the pack and no override - deny
	allowed, err = coreAPIs.Services.SerResolvePermission(testLog(), "org1", "m1", model.ModuleBilling, model.ActionRead, nil)
	assert.NilError(t, err)
	assert.Equal(t, allowed, false, "billing is not granted")
}

func TestSerResolvePermissionModuleOverride(t *testing.T) {
	member := &model.Member{ID: "m1", OrgID: "org1", Role: model.RoleMember}
	//explicit deny overriding the pack grant
	overrides := []model.Permission{
		{ID: "p1", OrgID: "org1", MemberID: "m1", Module: model.ModuleTasks, Action: model.ActionCreate,
			Allowed: false, Scope: model.PermissionScopeModule},
	}

	storage := genmocks.Storage{}
	storage.On("FindMemberByID", "org1", "m1").Return(member, nil)
	storage.On("FindPermissions", "org1", "m1").Return(overrides, nil)
	catalog := genmocks.PackCatalog{}
	catalog.On("DefaultPack").Return(testPack())
	coreAPIs := testCoreAPIs(&storage, &catalog, nil)

	allowed, err := coreAPIs.Services.SerResolvePermission(testLog(), "org1", "m1", model.ModuleTasks, model.ActionCreate, nil)
	assert.NilError(t, err)
	assert.Equal(t, allowed, false, "explicit override must win over the pack default")
}

func TestSerResolvePermissionSubviewOverride(t *testing.T) {
	member := &model.Member{ID: "m1", OrgID: "org1", Role: model.RoleMember}
	//module scoped deny plus a subview scoped allow for the same action
	overrides := []model.Permission{
		{ID: "p1", OrgID: "org1", MemberID: "m1", Module: model.ModuleTasks, Action: model.ActionUpdate,
			Allowed: false, Scope: model.PermissionScopeModule},
		{ID: "p2", OrgID: "org1", MemberID: "m1", Module: model.ModuleTasks, Action: model.ActionUpdate,
			Allowed: true, Scope: model.PermissionScopeSubview, SubviewKey: "board"},
	}

	storage := genmocks.Storage{}
	storage.On("FindMemberByID", "org1", "m1").Return(member, nil)
	storage.On("FindPermissions", "org1", "m1").Return(overrides, nil)
	catalog := genmocks.PackCatalog{}
	catalog.On("DefaultPack").Return(testPack())
	coreAPIs := testCoreAPIs(&storage, &catalog, nil)

	//within the subview the subview verdict fully replaces the module one
	board := "board"
	allowed, err := coreAPIs.Services.SerResolvePermission(testLog(), "org1", "m1", model.ModuleTasks, model.ActionUpdate, &board)
	assert.NilError(t, err)
	assert.Equal(t, allowed, true, "subview override must replace the module verdict")

	//outside the subview the module scoped deny holds
	list := "list"
	allowed, err = coreAPIs.Services.SerResolvePermission(testLog(), "org1", "m1", model.ModuleTasks, model.ActionUpdate, &list)
	assert.NilError(t, err)
	assert.Equal(t, allowed, false, "other subviews fall back to the module verdict")

	allowed, err = coreAPIs.Services.SerResolvePermission(testLog(), "org1", "m1", model.ModuleTasks, model.ActionUpdate, nil)
	assert.NilError(t, err)
	assert.Equal(t, allowed, false, "module level check ignores subview overrides")
}

func TestSerResolvePermissionUnknownEnum(t *testing.T) {
	storage := genmocks.Storage{}
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	_, err := coreAPIs.Services.SerResolvePermission(testLog(), "org1", "m1", "payroll", model.ActionRead, nil)
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusInvalid, "kind is different")

	_, err = coreAPIs.Services.SerResolvePermission(testLog(), "org1", "m1", model.ModuleTasks, "approve", nil)
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusInvalid, "kind is different")

	//the member is never looked up for an invalid key
	storage.AssertNotCalled(t, "FindMemberByID")
}

func TestSerGetEffectiveMatrix(t *testing.T) {
	member := &model.Member{ID: "m1", OrgID: "org1", Role: model.RoleMember}
	overrides := []model.Permission{
		{ID: "p1", OrgID: "org1", MemberID: "m1", Module: model.ModuleBilling, Action: model.ActionRead,
			Allowed: true, Scope: model.PermissionScopeModule},
	}

	storage := genmocks.Storage{}
	storage.On("FindMemberByID", "org1", "m1").Return(member, nil)
	storage.On("FindPermissions", "org1", "m1").Return(overrides, nil)
	catalog := genmocks.PackCatalog{}
	catalog.On("DefaultPack").Return(testPack())
	coreAPIs := testCoreAPIs(&storage, &catalog, nil)

	matrix, err := coreAPIs.Services.SerGetEffectiveMatrix(testLog(), "org1", "m1")
	assert.NilError(t, err)
	assert.Equal(t, len(matrix), len(model.AllModules), "every module must be present")
	assert.Equal(t, matrix[model.ModuleTasks][model.ActionRead], true, "pack grant missing")
	assert.Equal(t, matrix[model.ModuleBilling][model.ActionRead], true, "override grant missing")
	assert.Equal(t, matrix[model.ModuleBilling][model.ActionDelete], false, "unexpected grant")
}

func TestAdmApplyPermissionPack(t *testing.T) {
	member := &model.Member{ID: "m1", OrgID: "org1", Role: model.RoleMember}

	storageMock := genmocks.Storage{}
	storageMock.On("FindMemberByID", "org1", "m1").Return(member, nil)
	storageMock.On("PerformTransaction", mock.Anything).Return(func(transaction func(storage.TransactionContext) error) error {
		return transaction(nil)
	})
	storageMock.On("DeletePermissions", mock.Anything, "org1", "m1").Return(nil)
	storageMock.On("InsertPermissions", mock.Anything, mock.AnythingOfType("[]model.Permission")).Return(nil)
	storageMock.On("DeleteModuleViews", mock.Anything, "org1", "m1").Return(nil)
	storageMock.On("InsertModuleViews", mock.Anything, mock.AnythingOfType("[]model.ModuleView")).Return(nil)
	storageMock.On("UpdateMemberPack", mock.Anything, "org1", "m1", "standard").Return(nil)
	storageMock.On("InsertAuditEvent", mock.AnythingOfType("model.AuditEvent")).Return(nil)
	catalog := genmocks.PackCatalog{}
	catalog.On("GetPack", "standard").Return(testPack())
	coreAPIs := testCoreAPIs(&storageMock, &catalog, nil)

	err := coreAPIs.Administration.AdmApplyPermissionPack(testLog(), "org1", "admin1", "m1", "standard")
	assert.NilError(t, err)
	storageMock.AssertCalled(t, "UpdateMemberPack", mock.Anything, "org1", "m1", "standard")

	//second case - unknown pack
	catalog.On("GetPack", "nope").Return(nil)
	err = coreAPIs.Administration.AdmApplyPermissionPack(testLog(), "org1", "admin1", "m1", "nope")
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusInvalid, "kind is different")
}

func TestAdmApplyPermissionPackOwner(t *testing.T) {
	storageMock := genmocks.Storage{}
	storageMock.On("FindMemberByID", "org1", "m1").Return(&model.Member{ID: "m1", OrgID: "org1", IsOwner: true}, nil)
	coreAPIs := testCoreAPIs(&storageMock, nil, nil)

	err := coreAPIs.Administration.AdmApplyPermissionPack(testLog(), "org1", "admin1", "m1", "standard")
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusForbidden, "the owner's permissions are immutable")
}

func TestAdmBulkUpdatePermissions(t *testing.T) {
	member := &model.Member{ID: "m1", OrgID: "org1", Role: model.RoleMember}
	updates := []model.PermissionUpdate{
		{Module: model.ModuleTasks, Action: model.ActionUpdate, Allowed: true, Scope: model.PermissionScopeModule},
		{Module: model.ModuleDocuments, Action: model.ActionRead, Allowed: true, Scope: model.PermissionScopeSubview, SubviewKey: "contracts"},
	}

	storageMock := genmocks.Storage{}
	storageMock.On("FindMemberByID", "org1", "m1").Return(member, nil)
	storageMock.On("PerformTransaction", mock.Anything).Return(func(transaction func(storage.TransactionContext) error) error {
		return transaction(nil)
	})
	storageMock.On("SavePermission", mock.Anything, mock.AnythingOfType("model.Permission")).Return(nil)
	storageMock.On("InsertAuditEvent", mock.AnythingOfType("model.AuditEvent")).Return(nil)
	coreAPIs := testCoreAPIs(&storageMock, nil, nil)

	err := coreAPIs.Administration.AdmBulkUpdatePermissions(testLog(), "org1", "admin1", "m1", updates)
	assert.NilError(t, err)
	storageMock.AssertNumberOfCalls(t, "SavePermission", 2)
}

func TestAdmBulkUpdatePermissionsRejectsWholeBatch(t *testing.T) {
	//one bad entry rejects the batch before anything is written
	updates := []model.PermissionUpdate{
		{Module: model.ModuleTasks, Action: model.ActionUpdate, Allowed: true, Scope: model.PermissionScopeModule},
		{Module: "payroll", Action: model.ActionRead, Allowed: true, Scope: model.PermissionScopeModule},
	}

	storageMock := genmocks.Storage{}
	coreAPIs := testCoreAPIs(&storageMock, nil, nil)

	err := coreAPIs.Administration.AdmBulkUpdatePermissions(testLog(), "org1", "admin1", "m1", updates)
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusInvalid, "kind is different")
	storageMock.AssertNotCalled(t, "SavePermission")
	storageMock.AssertNotCalled(t, "PerformTransaction")
}

func TestAdmBulkUpdatePermissionsScopeConsistency(t *testing.T) {
	storageMock := genmocks.Storage{}
	coreAPIs := testCoreAPIs(&storageMock, nil, nil)

	//subview scope without a subview key
	updates := []model.PermissionUpdate{
		{Module: model.ModuleTasks, Action: model.ActionUpdate, Allowed: true, Scope: model.PermissionScopeSubview},
	}
	err := coreAPIs.Administration.AdmBulkUpdatePermissions(testLog(), "org1", "admin1", "m1", updates)
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusInvalid, "kind is different")
}
