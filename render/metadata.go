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

// Package render is a thin, explicitly out-of-core renderer: it accepts
// the resolver's ([]rustapi.Namespace, metadata) and produces a final
// textual report. The core makes no assumption about this format --
// both formats here are call-site conveniences, not contractually part
// of the resolver.
package render

// Metadata is the small slice of crate metadata a rendered report
// prefixes its namespace list with: what library this is a description
// of, and from what version.
type Metadata struct {
	Name          string
	Version       string
	Documentation string
}
