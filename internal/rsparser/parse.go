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
	"strings"

	"crateapi.dev/resolver/rustapi"
	ts "github.com/tree-sitter/go-tree-sitter"
)

// definitionKinds are the tree-sitter node kinds that produce a
// Definition raw item, once confirmed public.
var definitionKinds = map[string]bool{
	"function_item":    true,
	"struct_item":      true,
	"enum_item":        true,
	"trait_item":       true,
	"macro_definition": true,
}

// ParseFile parses one Rust source file's bytes into a FileResult: its
// top-level raw items in source order, plus the file's own inner doc
// comment. parser must already have the Rust grammar set (see NewParser).
func ParseFile(parser *ts.Parser, source []byte) (FileResult, error) {
	tree := parser.Parse(source, nil)
	if tree == nil {
		return FileResult{}, fmt.Errorf("rsparser: parse returned no tree")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() && root.NamedChildCount() == 0 {
		return FileResult{}, fmt.Errorf("rsparser: unparseable source")
	}

	children := directChildren(root)
	doc := innerDocComment(children, source)
	items := parseItems(children, source)

	return FileResult{Items: items, DocComment: doc}, nil
}

func directChildren(node *ts.Node) []*ts.Node {
	out := make([]*ts.Node, 0, node.ChildCount())
	for i := range node.ChildCount() {
		if child := node.Child(i); child != nil {
			out = append(out, child)
		}
	}
	return out
}

// parseItems walks a file's or inline module's direct children, emitting
// one RawItem per declaration, module, or re-export statement that
// carries some visibility modifier. Fully private items are dropped here,
// except out-of-file module declarations (see parseModItem); which of the
// *remaining* visibility kinds (plain vs restricted) end up
// counted as public is rustapi.VisibilityMode's decision, made later by
// the walker -- the parser only records which kind each item had.
func parseItems(children []*ts.Node, source []byte) []RawItem {
	var items []RawItem
	for _, child := range children {
		if !child.IsNamed() {
			continue
		}
		switch child.GrammarName() {
		case "mod_item":
			if item := parseModItem(child, source); item != nil {
				items = append(items, item)
			}
		case "use_declaration":
			vis := visibilityOf(child)
			if vis == rustapi.VisibilityNone {
				continue
			}
			items = append(items, parseUseDeclaration(child, source, vis)...)
		default:
			if !definitionKinds[child.GrammarName()] {
				continue
			}
			if vis := visibilityOf(child); vis != rustapi.VisibilityNone {
				items = append(items, &Definition{
					Symbol:     renderDefinition(child, source),
					Visibility: vis,
				})
			}
		}
	}
	return items
}

// visibilityOf classifies node's visibility_modifier child, if any: no
// modifier is VisibilityNone, a bare `pub` is VisibilityPlain, and
// `pub(crate)` / `pub(super)` / `pub(in path)` -- anything with a
// parenthesized qualifier -- is VisibilityRestricted.
func visibilityOf(node *ts.Node) rustapi.DeclVisibility {
	for i := range node.ChildCount() {
		child := node.Child(i)
		if child == nil || child.GrammarName() != "visibility_modifier" {
			continue
		}
		// Bare `pub` is a single token. `pub(crate)`, `pub(super)`,
		// `pub(self)`, and `pub(in path)` all add a parenthesized
		// qualifier, so the node has more than one child regardless of
		// whether that qualifier is itself a named node.
		if child.ChildCount() > 1 {
			return rustapi.VisibilityRestricted
		}
		return rustapi.VisibilityPlain
	}
	return rustapi.VisibilityNone
}

// parseModItem handles both forms of `mod X`: with an inline body
// (declaration_list), or without one (a bare declaration pointing at a
// sibling file). Non-public inline modules are dropped entirely --
// inline private modules are invisible to the resolver -- but a
// non-public ModuleDeclaration is still emitted, since the walker alone
// decides reachability of out-of-file modules.
func parseModItem(node *ts.Node, source []byte) RawItem {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	name := nameNode.Utf8Text(source)
	vis := visibilityOf(node)

	body := node.ChildByFieldName("body")
	if body == nil {
		return &ModuleDeclaration{Name: name, Visibility: vis}
	}

	if vis == rustapi.VisibilityNone {
		return nil
	}

	bodyChildren := directChildren(body)
	return &InlineModule{
		Name:       name,
		Visibility: vis,
		DocComment: innerDocComment(bodyChildren, source),
		Items:      parseItems(bodyChildren, source),
	}
}

// parseUseDeclaration canonicalises a `pub use ...;` statement into one or
// more Reexport items: a plain path yields one reexport, a `{...}` list
// yields one per leaf, and nested tree lists distribute the prefix
// recursively. Every leaf carries the whole statement's own visibility.
func parseUseDeclaration(node *ts.Node, source []byte, vis rustapi.DeclVisibility) []RawItem {
	arg := node.ChildByFieldName("argument")
	if arg == nil {
		return nil
	}
	var out []RawItem
	for _, re := range flattenUseTree(arg, source, "") {
		re.Visibility = vis
		out = append(out, re)
	}
	return out
}

// flattenUseTree recursively distributes prefix over a use-tree node,
// returning one Reexport per leaf path. A leading "self::" segment is
// stripped, since it denotes "relative to the current module" -- exactly
// what an un-prefixed target path already means to the walker's
// canonicalisation rule.
func flattenUseTree(node *ts.Node, source []byte, prefix string) []*Reexport {
	switch node.GrammarName() {
	case "use_wildcard":
		// `use a::b::*;` re-exports no nameable symbol of its own.
		return nil

	case "use_as_clause":
		path := node.ChildByFieldName("path")
		alias := node.ChildByFieldName("alias")
		if path == nil || alias == nil {
			return nil
		}
		target := joinPath(prefix, path.Utf8Text(source))
		return []*Reexport{{LocalName: alias.Utf8Text(source), TargetPath: stripSelf(target)}}

	case "scoped_use_list":
		path := node.ChildByFieldName("path")
		list := node.ChildByFieldName("list")
		if list == nil {
			return nil
		}
		base := prefix
		if path != nil {
			base = joinPath(prefix, path.Utf8Text(source))
		}
		return flattenUseTree(list, source, base)

	case "use_list":
		var out []*Reexport
		for i := range node.NamedChildCount() {
			child := node.NamedChild(i)
			if child == nil {
				continue
			}
			out = append(out, flattenUseTree(child, source, prefix)...)
		}
		return out

	case "scoped_identifier":
		full := joinPath(prefix, node.Utf8Text(source))
		return []*Reexport{{LocalName: lastSegment(full), TargetPath: stripSelf(full)}}

	case "identifier", "type_identifier", "crate", "self", "super":
		full := joinPath(prefix, node.Utf8Text(source))
		return []*Reexport{{LocalName: node.Utf8Text(source), TargetPath: stripSelf(full)}}

	default:
		full := joinPath(prefix, node.Utf8Text(source))
		return []*Reexport{{LocalName: lastSegment(full), TargetPath: stripSelf(full)}}
	}
}

func joinPath(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return prefix + "::" + segment
}

func lastSegment(path string) string {
	idx := strings.LastIndex(path, "::")
	if idx < 0 {
		return path
	}
	return path[idx+2:]
}

func stripSelf(path string) string {
	return strings.TrimPrefix(path, "self::")
}
