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

// VisibilityMode decides whether pub(crate) and pub(super) declarations
// count as public for the purposes of an externally observed API. The
// design note left this ambiguous on purpose rather than picking
// silently; ResolveOptions.Visibility is the flag it asked for.
type VisibilityMode int

const (
	// VisibilityRestrictedAsPublic treats pub(crate)/pub(super) the same
	// as a bare pub. This is the default: it matches what the tool has
	// historically done and is the conservative choice when the goal is
	// "don't silently drop a declaration a downstream consumer might see
	// through a re-export chain."
	VisibilityRestrictedAsPublic VisibilityMode = iota
	// VisibilityPublicOnly treats only a bare pub as public; pub(crate)
	// and pub(super) declarations are invisible to the resolver even if
	// re-exported.
	VisibilityPublicOnly
)

// ResolveOptions configures a single Resolve invocation. The zero value
// is the default configuration (VisibilityRestrictedAsPublic).
type ResolveOptions struct {
	Visibility VisibilityMode
}

// DeclVisibility is the three-way visibility a single declaration,
// module declaration, or re-export statement actually carries in source,
// as distinct from VisibilityMode's policy decision about which of those
// three count as "public" for a given run.
type DeclVisibility int

const (
	// VisibilityNone means no visibility modifier at all: a private item,
	// invisible regardless of VisibilityMode.
	VisibilityNone DeclVisibility = iota
	// VisibilityPlain means a bare `pub`.
	VisibilityPlain
	// VisibilityRestricted means `pub(crate)`, `pub(super)`, or `pub(in
	// ...)`.
	VisibilityRestricted
)

// Counts reports whether this declared visibility should be treated as
// public under mode.
func (v DeclVisibility) Counts(mode VisibilityMode) bool {
	switch v {
	case VisibilityPlain:
		return true
	case VisibilityRestricted:
		return mode == VisibilityRestrictedAsPublic
	default:
		return false
	}
}
