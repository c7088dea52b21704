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

// Package walker is the ModuleWalker stage: starting from an entry-point
// file, it follows out-of-file module declarations to their backing files
// and produces a flat, order-insignificant list of Modules.
package walker

import "crateapi.dev/resolver/rustapi"

// Module is one node in the module tree discovered by the walk: either a
// whole file, or an inline `mod m { ... }` block nested inside one.
type Module struct {
	Path        string
	Definitions []rustapi.Symbol
	References  []string
	IsPublic    bool
	DocComment  string
}
