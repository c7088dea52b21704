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

package walker

import (
	"path/filepath"
	"unicode/utf8"

	"crateapi.dev/resolver/analysis"
	"crateapi.dev/resolver/internal/rsparser"
	"crateapi.dev/resolver/rustapi"
	ts "github.com/tree-sitter/go-tree-sitter"
)

// FileReader is the narrow filesystem seam the walker needs, cutting
// "read files" away from "extract items" so tests can run entirely
// against an in-memory filesystem.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
	Exists(path string) bool
}

// Walk performs a depth-first traversal: parse the
// entry file, follow every out-of-file module declaration to its backing
// file via lang.LookupModule, and return the flat module list. Each file
// is visited at most once; cyclic module declarations terminate silently.
// mode decides which of a restricted (pub(crate)/pub(super)) item's
// visibility counts as public; see rustapi.DeclVisibility.Counts.
func Walk(reader FileReader, lang analysis.Language, entryFile string, mode rustapi.VisibilityMode) ([]Module, rustapi.CoreError) {
	w := &walk{
		reader:  reader,
		lang:    lang,
		mode:    mode,
		parser:  rsparser.NewParser(lang.Grammar),
		visited: make(map[string]bool),
	}
	if err := w.walkFile(entryFile, "", true); err != nil {
		return nil, err
	}
	return w.modules, nil
}

type walk struct {
	reader  FileReader
	lang    analysis.Language
	mode    rustapi.VisibilityMode
	parser  *ts.Parser
	visited map[string]bool
	modules []Module
}

func (w *walk) walkFile(file, path string, public bool) rustapi.CoreError {
	canon := filepath.Clean(file)
	if w.visited[canon] {
		return nil
	}
	w.visited[canon] = true

	source, err := w.reader.ReadFile(file)
	if err != nil {
		return &rustapi.ParseError{Path: file, Reason: err.Error()}
	}
	if !utf8.Valid(source) {
		return &rustapi.ParseError{Path: file, Reason: "not valid UTF-8 text"}
	}

	result, err := rsparser.ParseFile(w.parser, source)
	if err != nil {
		return &rustapi.ParseError{Path: file, Reason: err.Error()}
	}

	return w.addModule(path, public, result.DocComment, result.Items, file)
}

// addModule builds the Module for one file or inline block at path, then
// recurses into its inline sub-modules and out-of-file module
// declarations. currentFile is the file a nested ModuleDeclaration's
// backing file must be resolved relative to; it does not change when
// recursing into an InlineModule, since that module has no file of its
// own.
func (w *walk) addModule(path string, public bool, doc string, items []rsparser.RawItem, currentFile string) rustapi.CoreError {
	var defs []rustapi.Symbol
	var refs []string

	for _, item := range items {
		switch it := item.(type) {
		case *rsparser.Definition:
			if it.Visibility.Counts(w.mode) {
				defs = append(defs, it.Symbol)
			}

		case *rsparser.Reexport:
			if it.Visibility.Counts(w.mode) {
				refs = append(refs, canonicalizeReference(path, it.TargetPath))
			}

		case *rsparser.InlineModule:
			if !it.Visibility.Counts(w.mode) {
				continue
			}
			childPath := joinModulePath(path, it.Name)
			if err := w.addModule(childPath, true, it.DocComment, it.Items, currentFile); err != nil {
				return err
			}

		case *rsparser.ModuleDeclaration:
			backing, ok := w.lang.LookupModule(currentFile, it.Name, w.reader.Exists)
			if !ok {
				continue
			}
			childPath := joinModulePath(path, it.Name)
			childPublic := it.Visibility.Counts(w.mode)
			if err := w.walkFile(backing, childPath, childPublic); err != nil {
				return err
			}
		}
	}

	w.modules = append(w.modules, Module{
		Path:        path,
		Definitions: defs,
		References:  refs,
		IsPublic:    public,
		DocComment:  doc,
	})
	return nil
}

func joinModulePath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "::" + name
}

// canonicalizeReference applies the reference canonicalisation rule: a
// Reexport with target T declared in a module at path P becomes reference
// T if P is empty, P::T otherwise.
func canonicalizeReference(modulePath, target string) string {
	return joinModulePath(modulePath, target)
}
