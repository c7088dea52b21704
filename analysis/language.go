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

// Package analysis sketches the per-language "analyser" contract the
// design notes describe: a language identifier mapping to a concrete-syntax
// grammar, a manifest reader, and a module file-lookup rule. Only Rust is
// populated; the seam is left open rather than speculatively implemented.
package analysis

import ts "github.com/tree-sitter/go-tree-sitter"

// Manifest is the subset of package-manifest metadata the core needs to
// label its output; it is deliberately smaller than the manifest reader's
// own richer struct (see manifest.CargoManifest).
type Manifest struct {
	Name          string
	Version       string
	Documentation string
	EntryPoint    string
}

// ManifestReader loads a Manifest given a crate/library root directory.
type ManifestReader func(root string) (Manifest, error)

// ModuleFileLookup resolves the backing file for an out-of-file module
// declaration named name, found in the file at parentFile. exists reports
// whether a candidate path is a real, readable file -- injected rather
// than calling os.Stat directly so the lookup rule can run against an
// in-memory filesystem in tests. Returns ("", false) when no candidate
// exists, which the walker treats as a silent, non-fatal skip.
type ModuleFileLookup func(parentFile, name string, exists func(path string) bool) (path string, ok bool)

// Language is a small record of function values -- a capability, not a
// base class -- describing how to analyse one source language.
type Language struct {
	Name           string
	Grammar        *ts.Language
	ReadManifest   ManifestReader
	LookupModule   ModuleFileLookup
	FileExtensions []string
}
