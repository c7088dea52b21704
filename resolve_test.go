/*
Copyright © 2025 Benny Powers <web@bennypowers.com>

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

package resolver

import (
	"testing"

	"crateapi.dev/resolver/analysis"
	"crateapi.dev/resolver/internal/platform"
	"crateapi.dev/resolver/rustapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findNamespace(t *testing.T, namespaces []rustapi.Namespace, path string) rustapi.Namespace {
	t.Helper()
	for _, ns := range namespaces {
		if ns.Path == path {
			return ns
		}
	}
	require.Failf(t, "namespace not found", "no namespace at path %q", path)
	return rustapi.Namespace{}
}

func symbolNames(ns rustapi.Namespace) []string {
	names := make([]string, len(ns.Symbols))
	for i, s := range ns.Symbols {
		names[i] = s.Name
	}
	return names
}

func TestResolveRootOnlyDefinition(t *testing.T) {
	fs := platform.NewMapFS(map[string]string{"src/lib.rs": "pub fn a() {}"})

	namespaces, err := resolveWithLanguage(fs, analysis.Rust, "src/lib.rs", "k", rustapi.ResolveOptions{})
	require.Nil(t, err)
	require.Len(t, namespaces, 1)
	assert.Equal(t, "", namespaces[0].Path)
	assert.Equal(t, []string{"a"}, symbolNames(namespaces[0]))
}

func TestResolveInlineModule(t *testing.T) {
	fs := platform.NewMapFS(map[string]string{
		"src/lib.rs": "pub mod m { pub fn f() -> i32 { 1 } }",
	})

	namespaces, err := resolveWithLanguage(fs, analysis.Rust, "src/lib.rs", "k", rustapi.ResolveOptions{})
	require.Nil(t, err)
	require.Len(t, namespaces, 2)

	root := findNamespace(t, namespaces, "")
	assert.Empty(t, root.Symbols)

	m := findNamespace(t, namespaces, "m")
	require.Len(t, m.Symbols, 1)
	assert.Equal(t, "f", m.Symbols[0].Name)
	assert.Equal(t, "pub fn f() -> i32;", m.Symbols[0].Source)
}

func TestResolveCrossFileReexport(t *testing.T) {
	fs := platform.NewMapFS(map[string]string{
		"src/lib.rs":   "mod inner;\npub use inner::T;",
		"src/inner.rs": "pub struct T;",
	})

	namespaces, err := resolveWithLanguage(fs, analysis.Rust, "src/lib.rs", "k", rustapi.ResolveOptions{})
	require.Nil(t, err)

	root := findNamespace(t, namespaces, "")
	assert.Equal(t, []string{"T"}, symbolNames(root))

	for _, ns := range namespaces {
		assert.NotEqual(t, "inner", ns.Path, "private, symbol-less inner namespace must not be emitted")
	}
}

func TestResolvePrivateIntermediary(t *testing.T) {
	fs := platform.NewMapFS(map[string]string{
		"src/lib.rs":          "pub mod outer;",
		"src/outer/mod.rs":    "mod priv_m;\npub use priv_m::E;",
		"src/outer/priv_m.rs": "pub enum E { A, B }",
	})

	namespaces, err := resolveWithLanguage(fs, analysis.Rust, "src/lib.rs", "k", rustapi.ResolveOptions{})
	require.Nil(t, err)

	outer := findNamespace(t, namespaces, "outer")
	assert.Equal(t, []string{"E"}, symbolNames(outer))

	for _, ns := range namespaces {
		assert.NotEqual(t, "outer::priv_m", ns.Path, "E must not also be visible at the private intermediary")
	}
}

func TestResolveCyclicModules(t *testing.T) {
	fs := platform.NewMapFS(map[string]string{
		"src/a.rs": "pub mod b;\npub fn from_a() {}",
		"src/b.rs": "pub mod a;\npub fn from_b() {}",
	})

	namespaces, err := resolveWithLanguage(fs, analysis.Rust, "src/a.rs", "k", rustapi.ResolveOptions{})
	require.Nil(t, err)

	root := findNamespace(t, namespaces, "")
	assert.Equal(t, []string{"from_a"}, symbolNames(root))

	b := findNamespace(t, namespaces, "b")
	assert.Equal(t, []string{"from_b"}, symbolNames(b))
}

func TestResolveUnresolvedReference(t *testing.T) {
	fs := platform.NewMapFS(map[string]string{
		"src/lib.rs": "pub use gone::X;",
	})

	_, err := resolveWithLanguage(fs, analysis.Rust, "src/lib.rs", "k", rustapi.ResolveOptions{})
	require.NotNil(t, err)

	resErr, ok := err.(*rustapi.ResolutionError)
	require.True(t, ok, "expected a *rustapi.ResolutionError, got %T", err)
	assert.Equal(t, "gone::X", resErr.Path)
}

func TestResolveEmptyEntryFile(t *testing.T) {
	fs := platform.NewMapFS(map[string]string{"src/lib.rs": ""})

	namespaces, err := resolveWithLanguage(fs, analysis.Rust, "src/lib.rs", "k", rustapi.ResolveOptions{})
	require.Nil(t, err)
	require.Len(t, namespaces, 1)
	assert.Equal(t, "", namespaces[0].Path)
	assert.Empty(t, namespaces[0].Symbols)
}

func TestResolveOnlyPrivateDeclarations(t *testing.T) {
	fs := platform.NewMapFS(map[string]string{"src/lib.rs": "fn hidden() {}"})

	namespaces, err := resolveWithLanguage(fs, analysis.Rust, "src/lib.rs", "k", rustapi.ResolveOptions{})
	require.Nil(t, err)
	require.Len(t, namespaces, 1)
	assert.Empty(t, namespaces[0].Symbols)
}

func TestResolveSelfReexportSameFile(t *testing.T) {
	fs := platform.NewMapFS(map[string]string{
		"src/lib.rs": "pub use self::X;\npub struct X;",
	})

	namespaces, err := resolveWithLanguage(fs, analysis.Rust, "src/lib.rs", "k", rustapi.ResolveOptions{})
	require.Nil(t, err)
	require.Len(t, namespaces, 1)
	assert.Equal(t, []string{"X"}, symbolNames(namespaces[0]))
}

func TestResolveVisibilityModeExcludesRestricted(t *testing.T) {
	fs := platform.NewMapFS(map[string]string{
		"src/lib.rs": "pub(crate) fn a() {}",
	})

	restricted, err := resolveWithLanguage(fs, analysis.Rust, "src/lib.rs", "k",
		rustapi.ResolveOptions{Visibility: rustapi.VisibilityRestrictedAsPublic})
	require.Nil(t, err)
	assert.Equal(t, []string{"a"}, symbolNames(findNamespace(t, restricted, "")))

	publicOnly, err := resolveWithLanguage(fs, analysis.Rust, "src/lib.rs", "k",
		rustapi.ResolveOptions{Visibility: rustapi.VisibilityPublicOnly})
	require.Nil(t, err)
	assert.Empty(t, findNamespace(t, publicOnly, "").Symbols)
}
