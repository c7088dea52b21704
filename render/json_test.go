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
	"encoding/json"
	"testing"

	"crateapi.dev/resolver/internal/platform/testutil"
	"crateapi.dev/resolver/render"
	"crateapi.dev/resolver/rustapi"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestJSON_QueryableWithGjson(t *testing.T) {
	out, err := render.JSON(fixtureNamespaces(), render.Metadata{Name: "k", Version: "1.0.0"})
	require.NoError(t, err)
	require.True(t, json.Valid(out))

	result := gjson.GetBytes(out, `namespaces.#(path=="m").symbols.0.name`)
	require.Equal(t, "f", result.String())

	root := gjson.GetBytes(out, `namespaces.#(path=="").symbols.0.source`)
	require.Equal(t, "pub fn a();", root.String())
}

func TestJSON_MatchesGoldenReport(t *testing.T) {
	out, err := render.JSON(fixtureNamespaces(), render.Metadata{Name: "k", Version: "1.0.0"})
	require.NoError(t, err)

	testutil.CheckGolden(t, "report.json", out, testutil.GoldenOptions{
		Dir:         "testdata",
		UseJSONDiff: true,
	})
}

func TestJSON_RoundTripsIntoReport(t *testing.T) {
	out, err := render.JSON(fixtureNamespaces(), render.Metadata{Name: "k"})
	require.NoError(t, err)

	var report render.Report
	require.NoError(t, json.Unmarshal(out, &report))
	require.Len(t, report.Namespaces, 2)
	require.Equal(t, "m", report.Namespaces[1].Path)
}
