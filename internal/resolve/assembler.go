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

package resolve

import "crateapi.dev/resolver/rustapi"

// Assemble transforms a resolver Result into the user-facing namespace
// list: seed the root namespace, fan every resolved symbol out to each
// path in its visibility set, attach doc comments, and drop empty
// non-root namespaces that carry none.
func Assemble(result Result) []rustapi.Namespace {
	namespaces := make(map[string]*rustapi.Namespace)
	namespaces[rustapi.RootNamespacePath] = &rustapi.Namespace{Path: rustapi.RootNamespacePath}

	get := func(path string) *rustapi.Namespace {
		if ns, ok := namespaces[path]; ok {
			return ns
		}
		ns := &rustapi.Namespace{Path: path}
		namespaces[path] = ns
		return ns
	}

	for _, rs := range result.Symbols {
		for _, path := range rs.Modules.Members() {
			ns := get(path)
			ns.Symbols = append(ns.Symbols, rs.Symbol)
		}
	}

	for path, doc := range result.DocComments {
		get(path).DocComment = doc
	}

	out := make([]rustapi.Namespace, 0, len(namespaces))
	for path, ns := range namespaces {
		if path != rustapi.RootNamespacePath && len(ns.Symbols) == 0 && ns.DocComment == "" {
			continue
		}
		out = append(out, *ns)
	}
	return out
}
