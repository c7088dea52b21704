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

package render_test

import (
	"strings"
	"testing"

	"crateapi.dev/resolver/render"
	"crateapi.dev/resolver/rustapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureNamespaces() []rustapi.Namespace {
	return []rustapi.Namespace{
		{Path: "", Symbols: []rustapi.Symbol{{Name: "a", Source: "pub fn a();"}}},
		{
			Path:       "m",
			DocComment: "module m",
			Symbols:    []rustapi.Symbol{{Name: "f", Source: "pub fn f() -> i32;"}},
		},
	}
}

func TestXML_SortsNamespacesByPath(t *testing.T) {
	out := render.XML(fixtureNamespaces(), render.Metadata{Name: "k", Version: "1.0.0"})

	rootIdx := strings.Index(out, `path=""`)
	mIdx := strings.Index(out, `path="m"`)
	require.NotEqual(t, -1, rootIdx)
	require.NotEqual(t, -1, mIdx)
	assert.Less(t, rootIdx, mIdx)
}

func TestXML_EscapesSymbolSource(t *testing.T) {
	namespaces := []rustapi.Namespace{
		{Path: "", Symbols: []rustapi.Symbol{{Name: "cmp", Source: "pub fn cmp<T: PartialOrd<T>>(a: T, b: T) -> bool;"}}},
	}
	out := render.XML(namespaces, render.Metadata{Name: "k"})

	assert.Contains(t, out, "&lt;T: PartialOrd&lt;T&gt;&gt;")
	assert.NotContains(t, out, "PartialOrd<T>>(a")
}

func TestXML_OmitsEmptyDocumentationAndDoc(t *testing.T) {
	out := render.XML([]rustapi.Namespace{{Path: ""}}, render.Metadata{Name: "k"})

	assert.NotContains(t, out, "<documentation>")
	assert.NotContains(t, out, "<doc>")
}
