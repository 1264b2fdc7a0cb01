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

package packcatalog

import (
	"os"
	"path/filepath"
	"testing"

	"access-building-block/core/model"

	"gotest.tools/assert"
)

func writePacksFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "packs.yaml")
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewCatalogAdapter(t *testing.T) {
	path := writePacksFile(t, `
default: standard
packs:
  - id: standard
    name: Standard
    version: "1.0"
    roles:
      admin:
        projects:
          actions: [read, create, update, delete]
      member:
        tasks:
          actions: [read, create]
          subviews: [board]
          layout: board
      guest:
        projects:
          actions: [read]
  - id: restricted
    name: Restricted
    version: "1.0"
    roles:
      member:
        tasks:
          actions: [read]
`)

	catalog, err := NewCatalogAdapter(path)
	assert.NilError(t, err)

	standard := catalog.GetPack("standard")
	if standard == nil {
		t.Fatal("standard pack must be loaded")
	}
	assert.Equal(t, standard.Allows(model.RoleMember, model.ModuleTasks, model.ActionCreate), true, "grant is missing")
	assert.Equal(t, standard.Allows(model.RoleGuest, model.ModuleTasks, model.ActionRead), false, "unexpected grant")

	assert.Equal(t, catalog.DefaultPack().ID, "standard", "default is different")
	assert.Equal(t, len(catalog.ListPacks()), 2, "pack count is different")
	if catalog.GetPack("nope") != nil {
		t.Error("unknown pack must be nil")
	}
}

func TestNewCatalogAdapterRejectsUnknownEnums(t *testing.T) {
	//unknown module
	path := writePacksFile(t, `
packs:
  - id: broken
    roles:
      member:
        payroll:
          actions: [read]
`)
	_, err := NewCatalogAdapter(path)
	if err == nil {
		t.Error("we are expecting error")
	}

	//unknown action
	path = writePacksFile(t, `
packs:
  - id: broken
    roles:
      member:
        tasks:
          actions: [approve]
`)
	_, err = NewCatalogAdapter(path)
	if err == nil {
		t.Error("we are expecting error")
	}

	//unknown role
	path = writePacksFile(t, `
packs:
  - id: broken
    roles:
      superuser:
        tasks:
          actions: [read]
`)
	_, err = NewCatalogAdapter(path)
	if err == nil {
		t.Error("we are expecting error")
	}
}

func TestNewCatalogAdapterDefaultFallsBackToFirst(t *testing.T) {
	path := writePacksFile(t, `
packs:
  - id: only
    roles:
      member:
        tasks:
          actions: [read]
`)
	catalog, err := NewCatalogAdapter(path)
	assert.NilError(t, err)
	assert.Equal(t, catalog.DefaultPack().ID, "only", "first pack must be the default")
}
