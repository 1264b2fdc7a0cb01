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

	"github.com/stretchr/testify/mock"
	"gotest.tools/assert"
)

func TestSerCheckAccessGuestWithoutGrant(t *testing.T) {
	guest := &model.Member{ID: "g1", OrgID: "org1", Role: model.RoleGuest}

	storage := genmocks.Storage{}
	storage.On("FindMemberByID", "org1", "g1").Return(guest, nil)
	storage.On("FindPermissions", "org1", "g1").Return([]model.Permission{}, nil)
	storage.On("FindProjectAccessGrant", "org1", "g1", "proj1").Return(nil, nil)
	catalog := genmocks.PackCatalog{}
	catalog.On("DefaultPack").Return(testPack())
	coreAPIs := testCoreAPIs(&storage, &catalog, nil)

	//the pack grants projects.read to guests, but without a project grant the
	//guard denies
	projectID := "proj1"
	allowed, err := coreAPIs.Services.SerCheckAccess(testLog(), "org1", "g1", model.ModuleProjects, model.ActionRead, nil, &projectID, model.AccessLevelRead)
	assert.NilError(t, err)
	assert.Equal(t, allowed, false, "absence of a grant means no access")
}

func TestSerCheckAccessGuestGrantTiers(t *testing.T) {
	guest := &model.Member{ID: "g1", OrgID: "org1", Role: model.RoleGuest}
	grant := &model.ProjectAccessGrant{ID: "gr1", OrgID: "org1", MemberID: "g1", ProjectID: "proj1", AccessLevel: model.AccessLevelWrite}

	storage := genmocks.Storage{}
	storage.On("FindMemberByID", "org1", "g1").Return(guest, nil)
	storage.On("FindPermissions", "org1", "g1").Return([]model.Permission{}, nil)
	storage.On("FindProjectAccessGrant", "org1", "g1", "proj1").Return(grant, nil)
	catalog := genmocks.PackCatalog{}
	catalog.On("DefaultPack").Return(testPack())
	coreAPIs := testCoreAPIs(&storage, &catalog, nil)

	projectID := "proj1"

	//write covers read and write but not manage
	allowed, err := coreAPIs.Services.SerCheckAccess(testLog(), "org1", "g1", model.ModuleProjects, model.ActionRead, nil, &projectID, model.AccessLevelRead)
	assert.NilError(t, err)
	assert.Equal(t, allowed, true, "write grant must cover read")

	allowed, err = coreAPIs.Services.SerCheckAccess(testLog(), "org1", "g1", model.ModuleProjects, model.ActionRead, nil, &projectID, model.AccessLevelWrite)
	assert.NilError(t, err)
	assert.Equal(t, allowed, true, "write grant must cover write")

	allowed, err = coreAPIs.Services.SerCheckAccess(testLog(), "org1", "g1", model.ModuleProjects, model.ActionRead, nil, &projectID, model.AccessLevelManage)
	assert.NilError(t, err)
	assert.Equal(t, allowed, false, "write grant must not cover manage")
}

func TestSerCheckAccessGuardSkipsNonGuests(t *testing.T) {
	member := &model.Member{ID: "m1", OrgID: "org1", Role: model.RoleMember}

	storage := genmocks.Storage{}
	storage.On("FindMemberByID", "org1", "m1").Return(member, nil)
	storage.On("FindPermissions", "org1", "m1").Return([]model.Permission{}, nil)
	catalog := genmocks.PackCatalog{}
	catalog.On("DefaultPack").Return(testPack())
	coreAPIs := testCoreAPIs(&storage, &catalog, nil)

	projectID := "proj1"
	allowed, err := coreAPIs.Services.SerCheckAccess(testLog(), "org1", "m1", model.ModuleProjects, model.ActionRead, nil, &projectID, model.AccessLevelRead)
	assert.NilError(t, err)
	assert.Equal(t, allowed, true, "the guard is a no-op for non-guest roles")
	storage.AssertNotCalled(t, "FindProjectAccessGrant")
}

func TestSerCheckAccessDeniedResolverSkipsGuard(t *testing.T) {
	guest := &model.Member{ID: "g1", OrgID: "org1", Role: model.RoleGuest}

	storage := genmocks.Storage{}
	storage.On("FindMemberByID", "org1", "g1").Return(guest, nil)
	storage.On("FindPermissions", "org1", "g1").Return([]model.Permission{}, nil)
	catalog := genmocks.PackCatalog{}
	catalog.On("DefaultPack").Return(testPack())
	coreAPIs := testCoreAPIs(&storage, &catalog, nil)

	//guests have no billing grant, so the verdict is deny before the guard runs
	projectID := "proj1"
	allowed, err := coreAPIs.Services.SerCheckAccess(testLog(), "org1", "g1", model.ModuleBilling, model.ActionRead, nil, &projectID, model.AccessLevelRead)
	assert.NilError(t, err)
	assert.Equal(t, allowed, false, "resolver deny is final")
	storage.AssertNotCalled(t, "FindProjectAccessGrant")
}

func TestAdmGrantProjectAccess(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindMemberByID", "org1", "g1").Return(&model.Member{ID: "g1", OrgID: "org1", Role: model.RoleGuest}, nil)
	storage.On("SaveProjectAccessGrant", mock.AnythingOfType("model.ProjectAccessGrant")).Return(nil)
	storage.On("InsertAuditEvent", mock.AnythingOfType("model.AuditEvent")).Return(nil)
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	grant, err := coreAPIs.Administration.AdmGrantProjectAccess(testLog(), "org1", "admin1", "g1", "proj1", model.AccessLevelManage)
	assert.NilError(t, err)
	assert.Equal(t, grant.AccessLevel, model.AccessLevelManage, "level is different")

	//second case - invalid level
	_, err = coreAPIs.Administration.AdmGrantProjectAccess(testLog(), "org1", "admin1", "g1", "proj1", "superuser")
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusInvalid, "kind is different")
}

func TestAdmRevokeProjectAccess(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("DeleteProjectAccessGrant", "org1", "g1", "proj1").Return(true, nil)
	storage.On("InsertAuditEvent", mock.AnythingOfType("model.AuditEvent")).Return(nil)
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	err := coreAPIs.Administration.AdmRevokeProjectAccess(testLog(), "org1", "admin1", "g1", "proj1")
	assert.NilError(t, err)

	//second case - nothing to revoke
	storage2 := genmocks.Storage{}
	storage2.On("DeleteProjectAccessGrant", "org1", "g1", "proj2").Return(false, nil)
	coreAPIs = testCoreAPIs(&storage2, nil, nil)

	err = coreAPIs.Administration.AdmRevokeProjectAccess(testLog(), "org1", "admin1", "g1", "proj2")
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusNotFound, "kind is different")
}
