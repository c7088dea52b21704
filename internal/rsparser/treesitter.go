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

package rsparser

import (
	"fmt"

	ts "github.com/tree-sitter/go-tree-sitter"
)

// NewParser returns a fresh Rust parser. The pipeline runs as a single
// synchronous invocation threading one reusable parser through every
// file, so ModuleWalker owns exactly one of these and hands it to
// ParseFile for every file rather than acquiring one from a pool per file.
func NewParser(grammar *ts.Language) *ts.Parser {
	parser := ts.NewParser()
	if err := parser.SetLanguage(grammar); err != nil {
		// The grammar is compiled in; a failure here means the binding
		// itself is broken, not a user-supplied input.
		panic(fmt.Sprintf("rsparser: set language: %v", err))
	}
	return parser
}

// GetDescendantById finds the descendant of root whose node id matches
// id, walking depth-first, or returns nil when no node matches. Nothing
// in this tree calls it; the doc-comment scanner walks siblings directly.
func GetDescendantById(root *ts.Node, id uintptr) *ts.Node {
	var find func(node *ts.Node) *ts.Node
	find = func(node *ts.Node) *ts.Node {
		if node.Id() == id {
			return node
		}
		for i := range node.ChildCount() {
			child := node.Child(i)
			if child == nil {
				continue
			}
			if res := find(child); res != nil {
				return res
			}
		}
		return nil
	}
	return find(root)
}
