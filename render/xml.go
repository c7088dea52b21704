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

package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"

	"crateapi.dev/resolver/rustapi"
)

// XML renders a resolved namespace list as a flat, nested-tag report:
//
//	<crate name="k" version="1.0.0">
//	  <documentation>...</documentation>
//	  <namespace path="m">
//	    <doc>...</doc>
//	    <symbol name="f">pub fn f() -&gt; i32;</symbol>
//	  </namespace>
//	</crate>
//
// Namespaces are sorted by path for a deterministic report; the core
// itself makes no ordering promise between namespaces, so sorting
// is purely a renderer concern. Symbol order within a namespace is left
// untouched -- it is the meaningful, spec-mandated discovery order.
//
// encoding/xml's EscapeText (not a templating engine) is used for text
// safety: the output is a flat nested-tag format with no layout logic, so
// there is nothing a templating engine would add.
func XML(namespaces []rustapi.Namespace, meta Metadata) string {
	sorted := make([]rustapi.Namespace, len(namespaces))
	copy(sorted, namespaces)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<crate name=%s version=%s>\n", attr(meta.Name), attr(meta.Version))
	if meta.Documentation != "" {
		buf.WriteString("  <documentation>")
		xml.EscapeText(&buf, []byte(meta.Documentation))
		buf.WriteString("</documentation>\n")
	}

	for _, ns := range sorted {
		fmt.Fprintf(&buf, "  <namespace path=%s>\n", attr(ns.Path))
		if ns.DocComment != "" {
			buf.WriteString("    <doc>")
			xml.EscapeText(&buf, []byte(ns.DocComment))
			buf.WriteString("</doc>\n")
		}
		for _, sym := range ns.Symbols {
			fmt.Fprintf(&buf, "    <symbol name=%s>", attr(sym.Name))
			xml.EscapeText(&buf, []byte(sym.Source))
			buf.WriteString("</symbol>\n")
		}
		buf.WriteString("  </namespace>\n")
	}
	buf.WriteString("</crate>\n")
	return buf.String()
}

// attr renders an XML attribute value, quotes included, with entity
// escaping applied to the value.
func attr(value string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(value))
	return `"` + buf.String() + `"`
}
