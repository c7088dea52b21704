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

package rustapi

import "crateapi.dev/resolver/internal/pathset"

// ResolvedSymbol pairs a Symbol with every module path it is externally
// visible at: its definition site, plus every public re-export site.
// Modules is never empty -- a symbol with no publicly reachable namespace
// is dropped by the resolver before it ever becomes a ResolvedSymbol.
type ResolvedSymbol struct {
	Symbol  Symbol
	Modules pathset.Set[string]
}

// Namespace is a dotted path at which zero or more symbols are externally
// visible, plus the inner doc comment attached to the module(s) that back
// it, if any.
type Namespace struct {
	Path       string
	DocComment string
	Symbols    []Symbol
}

// RootNamespacePath is the module path of the crate root. It is always
// present in the output of Resolve, even when empty.
const RootNamespacePath = ""
