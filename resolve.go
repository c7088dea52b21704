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

// Package resolver ties the FileParser, ModuleWalker, SymbolResolver, and
// NamespaceAssembler stages together behind the single entry point the
// rest of the tree (CLI, MCP server) calls: Resolve.
package resolver

import (
	"crateapi.dev/resolver/analysis"
	"crateapi.dev/resolver/internal/platform"
	"crateapi.dev/resolver/internal/resolve"
	"crateapi.dev/resolver/internal/walker"
	"crateapi.dev/resolver/rustapi"
)

// Resolve runs the full pipeline over one Rust crate, starting from
// entryFile. crateName labels the root namespace for display purposes
// only -- the root namespace's path is always "" regardless.
func Resolve(entryFile, crateName string, opts rustapi.ResolveOptions) ([]rustapi.Namespace, rustapi.CoreError) {
	return resolveWithLanguage(platform.NewOSFileSystem(), analysis.Rust, entryFile, crateName, opts)
}

// resolveWithLanguage is Resolve's testable core: it accepts an injected
// filesystem and language so tests can run the full pipeline against an
// in-memory tree without touching disk or hard-coding Rust.
func resolveWithLanguage(reader walker.FileReader, lang analysis.Language, entryFile, crateName string, opts rustapi.ResolveOptions) ([]rustapi.Namespace, rustapi.CoreError) {
	modules, err := walker.Walk(reader, lang, entryFile, opts.Visibility)
	if err != nil {
		return nil, err
	}

	result, err := resolve.Resolve(modules)
	if err != nil {
		return nil, err
	}

	return resolve.Assemble(result), nil
}
