/*
Copyright © 2025 Benny Powers

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

package walker_test

import (
	"testing"

	"crateapi.dev/resolver/analysis"
	"crateapi.dev/resolver/internal/platform"
	"crateapi.dev/resolver/internal/walker"
	"crateapi.dev/resolver/rustapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modulePaths(modules []walker.Module) []string {
	paths := make([]string, len(modules))
	for i, m := range modules {
		paths[i] = m.Path
	}
	return paths
}

func findModule(t *testing.T, modules []walker.Module, path string) walker.Module {
	t.Helper()
	for _, m := range modules {
		if m.Path == path {
			return m
		}
	}
	require.Failf(t, "module not found", "no module at path %q", path)
	return walker.Module{}
}

func TestWalkRootOnlyDefinition(t *testing.T) {
	fs := platform.NewMapFS(map[string]string{
		"src/lib.rs": "pub fn a() {}",
	})

	modules, err := walker.Walk(fs, analysis.Rust, "src/lib.rs", rustapi.VisibilityRestrictedAsPublic)
	require.Nil(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, "", modules[0].Path)
	require.Len(t, modules[0].Definitions, 1)
	assert.Equal(t, "a", modules[0].Definitions[0].Name)
}

func TestWalkInlineModule(t *testing.T) {
	fs := platform.NewMapFS(map[string]string{
		"src/lib.rs": "pub mod m { pub fn f() -> i32 { 1 } }",
	})

	modules, err := walker.Walk(fs, analysis.Rust, "src/lib.rs", rustapi.VisibilityRestrictedAsPublic)
	require.Nil(t, err)
	assert.ElementsMatch(t, []string{"", "m"}, modulePaths(modules))

	m := findModule(t, modules, "m")
	require.Len(t, m.Definitions, 1)
	assert.Equal(t, "f", m.Definitions[0].Name)
	assert.Equal(t, "pub fn f() -> i32;", m.Definitions[0].Source)
}

func TestWalkCrossFileReexport(t *testing.T) {
	fs := platform.NewMapFS(map[string]string{
		"src/lib.rs":   "mod inner;\npub use inner::T;",
		"src/inner.rs": "pub struct T;",
	})

	modules, err := walker.Walk(fs, analysis.Rust, "src/lib.rs", rustapi.VisibilityRestrictedAsPublic)
	require.Nil(t, err)

	root := findModule(t, modules, "")
	assert.Equal(t, []string{"inner::T"}, root.References)

	inner := findModule(t, modules, "inner")
	assert.False(t, inner.IsPublic)
	require.Len(t, inner.Definitions, 1)
	assert.Equal(t, "T", inner.Definitions[0].Name)
}

func TestWalkPrivateIntermediary(t *testing.T) {
	fs := platform.NewMapFS(map[string]string{
		"src/lib.rs":        "pub mod outer;",
		"src/outer/mod.rs":  "mod priv_m;\npub use priv_m::E;",
		"src/outer/priv_m.rs": "pub enum E { A, B }",
	})

	modules, err := walker.Walk(fs, analysis.Rust, "src/lib.rs", rustapi.VisibilityRestrictedAsPublic)
	require.Nil(t, err)

	outer := findModule(t, modules, "outer")
	assert.True(t, outer.IsPublic)
	assert.Equal(t, []string{"outer::priv_m::E"}, outer.References)

	priv := findModule(t, modules, "outer::priv_m")
	assert.False(t, priv.IsPublic)
}

func TestWalkCyclicModules(t *testing.T) {
	fs := platform.NewMapFS(map[string]string{
		"src/a.rs": "mod b;\npub fn from_a() {}",
		"src/b.rs": "mod a;\npub fn from_b() {}",
	})

	modules, err := walker.Walk(fs, analysis.Rust, "src/a.rs", rustapi.VisibilityRestrictedAsPublic)
	require.Nil(t, err)
	assert.Len(t, modules, 2)
	assert.ElementsMatch(t, []string{"", "b"}, modulePaths(modules))
}

func TestWalkMissingBackingFileSkippedSilently(t *testing.T) {
	fs := platform.NewMapFS(map[string]string{
		"src/lib.rs": "mod gone;\npub fn a() {}",
	})

	modules, err := walker.Walk(fs, analysis.Rust, "src/lib.rs", rustapi.VisibilityRestrictedAsPublic)
	require.Nil(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, "", modules[0].Path)
}
