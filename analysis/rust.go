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

package analysis

import (
	"path/filepath"
	"strings"

	"crateapi.dev/resolver/manifest"
	ts "github.com/tree-sitter/go-tree-sitter"
	rustGrammar "github.com/tree-sitter/tree-sitter-rust/bindings/go"
)

// Rust is the only populated Language instance today. The design notes
// describe a per-language analyser contract precisely so that adding a
// second language later means adding a second Language value, not
// touching FileParser, ModuleWalker, or SymbolResolver.
var Rust = Language{
	Name:    "rust",
	Grammar: ts.NewLanguage(rustGrammar.Language()),
	ReadManifest: func(root string) (Manifest, error) {
		m, err := manifest.ReadCargoToml(root)
		if err != nil {
			return Manifest{}, err
		}
		return Manifest{
			Name:          m.Name,
			Version:       m.Version,
			Documentation: m.Documentation,
			EntryPoint:    m.EntryPoint,
		}, nil
	},
	LookupModule:   lookupRustModuleFile,
	FileExtensions: []string{".rs"},
}

// lookupRustModuleFile resolves `mod X` declared in .../dir/parent.rs.
// When parent.rs is not a mod.rs file it tries .../dir/parent/X/mod.rs,
// then .../dir/parent/X.rs, and then falls back to .../dir/X/mod.rs and
// .../dir/X.rs. When the parent is a mod.rs file it tries only
// .../dir/X/mod.rs, then .../dir/X.rs. It reports no backing file when
// no candidate exists.
func lookupRustModuleFile(parentFile, name string, exists func(string) bool) (string, bool) {
	dir := filepath.Dir(parentFile)
	stem := strings.TrimSuffix(filepath.Base(parentFile), filepath.Ext(parentFile))

	// `mod x` declared inside a non-mod.rs file whose own module lives in
	// a same-named directory (e.g. outer.rs declaring `mod inner` looks
	// in outer/inner.rs, not dir/inner.rs) -- Cargo's 2018+ module layout.
	searchDir := dir
	if stem != "mod" {
		searchDir = filepath.Join(dir, stem)
	}

	asDirMod := filepath.Join(searchDir, name, "mod.rs")
	if exists(asDirMod) {
		return asDirMod, true
	}

	asFile := filepath.Join(searchDir, name+".rs")
	if exists(asFile) {
		return asFile, true
	}

	// Fall back to the sibling layout (next to the parent, not nested under
	// the stem directory), which is where a crate root such as lib.rs or
	// main.rs keeps its modules. A mod.rs parent already searched here.
	if searchDir != dir {
		asDirMod = filepath.Join(dir, name, "mod.rs")
		if exists(asDirMod) {
			return asDirMod, true
		}
		asFile = filepath.Join(dir, name+".rs")
		if exists(asFile) {
			return asFile, true
		}
	}

	return "", false
}
