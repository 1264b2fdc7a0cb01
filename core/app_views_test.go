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

func TestSerGetModuleViews(t *testing.T) {
	member := &model.Member{ID: "m1", OrgID: "org1", Role: model.RoleMember}
	//a stored customization for tasks, projects falls back to the pack default
	stored := []model.ModuleView{
		{ID: "v1", OrgID: "org1", MemberID: "m1", Module: model.ModuleTasks,
			SubviewsEnabled: []string{"board", "calendar"}, Layout: "calendar"},
	}

	storage := genmocks.Storage{}
	storage.On("FindMemberByID", "org1", "m1").Return(member, nil)
	storage.On("FindModuleViews", "org1", "m1").Return(stored, nil)
	catalog := genmocks.PackCatalog{}
	catalog.On("DefaultPack").Return(testPack())
	coreAPIs := testCoreAPIs(&storage, &catalog, nil)

	views, err := coreAPIs.Services.SerGetModuleViews(testLog(), "org1", "m1")
	assert.NilError(t, err)
	assert.Equal(t, len(views), 2, "members get projects and tasks views")

	byModule := make(map[model.Module]model.ModuleView, len(views))
	for _, view := range views {
		byModule[view.Module] = view
	}
	assert.Equal(t, byModule[model.ModuleTasks].Layout, "calendar", "stored view must win over the default")
	assert.Equal(t, byModule[model.ModuleProjects].Layout, "list", "pack default must fill the gap")
}

func TestSerUpdateModuleView(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindMemberByID", "org1", "m1").Return(&model.Member{ID: "m1", OrgID: "org1", Role: model.RoleMember}, nil)
	storage.On("SaveModuleView", mock.AnythingOfType("model.ModuleView")).Return(nil)
	coreAPIs := testCoreAPIs(&storage, nil, nil)

	view, err := coreAPIs.Services.SerUpdateModuleView(testLog(), "org1", "m1", model.ModuleTasks, []string{"board"}, "board")
	assert.NilError(t, err)
	assert.Equal(t, view.Layout, "board", "layout is different")

	//second case - unknown module
	_, err = coreAPIs.Services.SerUpdateModuleView(testLog(), "org1", "m1", "payroll", nil, "list")
	if err == nil {
		t.Error("we are expecting error")
		return
	}
	assert.Equal(t, model.ErrorKind(err), model.StatusInvalid, "kind is different")
}
