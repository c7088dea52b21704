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

// Package rustapi holds the data model of the public API surface of a
// Rust crate: every externally reachable symbol, and the namespaces it is
// visible at.
//
// The entry point that computes it, Resolve, lives in the module-root
// package resolver. The packages under internal/ implement the four
// pipeline stages described in the design document: FileParser,
// ModuleWalker, SymbolResolver, NamespaceAssembler.
package rustapi

// Symbol is a named public declaration extracted from source.
//
// Source is the rendered source text: attached attributes and the
// preceding outer doc comment are preserved; for function-like items the
// body is elided down to the opening brace and terminated with ";"; for
// trait-like items the outer brace is kept and each member is rendered as
// an elided signature, four-space indented.
type Symbol struct {
	Name   string
	Source string
}
