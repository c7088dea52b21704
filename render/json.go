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
	"encoding/json"
	"sort"

	"crateapi.dev/resolver/rustapi"
)

// Report is the JSON-serializable shape of a resolved crate, consumed by
// cmd/query.go via gjson path expressions. It mirrors XML's structure
// field for field so either format carries the same information.
type Report struct {
	Name          string          `json:"name"`
	Version       string          `json:"version"`
	Documentation string          `json:"documentation,omitempty"`
	Namespaces    []NamespaceJSON `json:"namespaces"`
}

// NamespaceJSON is one namespace entry in a Report.
type NamespaceJSON struct {
	Path       string       `json:"path"`
	DocComment string       `json:"docComment,omitempty"`
	Symbols    []SymbolJSON `json:"symbols"`
}

// SymbolJSON is one symbol entry within a NamespaceJSON.
type SymbolJSON struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

// JSON renders a resolved namespace list as indented JSON, in the same
// sorted-by-path namespace order XML uses.
func JSON(namespaces []rustapi.Namespace, meta Metadata) ([]byte, error) {
	report := Report{
		Name:          meta.Name,
		Version:       meta.Version,
		Documentation: meta.Documentation,
		Namespaces:    make([]NamespaceJSON, 0, len(namespaces)),
	}

	sorted := make([]rustapi.Namespace, len(namespaces))
	copy(sorted, namespaces)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	for _, ns := range sorted {
		symbols := make([]SymbolJSON, len(ns.Symbols))
		for i, sym := range ns.Symbols {
			symbols[i] = SymbolJSON{Name: sym.Name, Source: sym.Source}
		}
		report.Namespaces = append(report.Namespaces, NamespaceJSON{
			Path:       ns.Path,
			DocComment: ns.DocComment,
			Symbols:    symbols,
		})
	}

	return json.MarshalIndent(report, "", "  ")
}
