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

// Package rsparser is the FileParser stage: it turns one source file's
// text into a flat list of RawItems, knowing nothing about the module
// hierarchy those items eventually end up arranged into.
package rsparser

import "crateapi.dev/resolver/rustapi"

// RawItem is the sum type of everything the FileParser can see inside one
// file or inline module block. It mirrors the manifest package's own
// Export union (an interface with an unexported marker method) rather
// than a single struct with a Kind field and nullable variant payloads.
type RawItem interface {
	isRawItem()
}

// Definition is a declared function, structure, enumeration, trait, or
// macro that carries some visibility modifier. Visibility records exactly
// which kind, so the walker can apply a rustapi.VisibilityMode before
// deciding whether this definition is part of the module's surface.
type Definition struct {
	Symbol     rustapi.Symbol
	Visibility rustapi.DeclVisibility
}

// InlineModule is a sub-module declared with its body in-line: `mod m { ... }`.
type InlineModule struct {
	Name       string
	Visibility rustapi.DeclVisibility
	DocComment string
	Items      []RawItem
}

// ModuleDeclaration is a sub-module declared without a body; its source
// lives in a sibling file the ModuleWalker must locate.
type ModuleDeclaration struct {
	Name       string
	Visibility rustapi.DeclVisibility
}

// Reexport is a re-exported name and the dotted path that points at its
// definition, as written in the source -- not yet rooted in the declaring
// module's own path.
type Reexport struct {
	LocalName  string
	TargetPath string
	Visibility rustapi.DeclVisibility
}

func (*Definition) isRawItem()        {}
func (*InlineModule) isRawItem()      {}
func (*ModuleDeclaration) isRawItem() {}
func (*Reexport) isRawItem()          {}

// FileResult is everything ParseFile extracts from one source file: its
// top-level items in source order, plus the file's own inner doc comment
// (the module-level `//!` block, if present).
type FileResult struct {
	Items      []RawItem
	DocComment string
}
