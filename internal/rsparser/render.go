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
	"strings"

	"crateapi.dev/resolver/rustapi"
	ts "github.com/tree-sitter/go-tree-sitter"
)

// functionLikeKinds are item kinds whose body gets elided down to the
// opening brace.
var functionLikeKinds = map[string]bool{
	"function_item": true,
}

// renderDefinition renders node (already known to be public) as a
// rustapi.Symbol: name, and source text, prefixed with its outer doc
// comment and any attached attributes.
func renderDefinition(node *ts.Node, source []byte) rustapi.Symbol {
	name := definitionName(node, source)
	body := renderBody(node, source)

	docLines, attrLines := collectOuterPrefix(node, source)
	var parts []string
	parts = append(parts, docLines...)
	parts = append(parts, attrLines...)
	parts = append(parts, body)

	return rustapi.Symbol{
		Name:   name,
		Source: strings.Join(parts, "\n"),
	}
}

func renderBody(node *ts.Node, source []byte) string {
	switch node.GrammarName() {
	case "trait_item":
		return renderTraitLike(node, source)
	default:
		if functionLikeKinds[node.GrammarName()] {
			return renderFunctionLike(node, source)
		}
		return node.Utf8Text(source)
	}
}

// renderFunctionLike renders a function-like item's text from its start
// up to, but not including, the opening brace of its body, right-trimmed,
// with ";" appended. Items with no body (e.g. a trait method signature
// used standalone) are rendered verbatim with ";" appended.
func renderFunctionLike(node *ts.Node, source []byte) string {
	body := node.ChildByFieldName("body")
	if body == nil {
		return strings.TrimRight(node.Utf8Text(source), " \t\n;") + ";"
	}
	text := string(source[node.StartByte():body.StartByte()])
	return strings.TrimRight(text, " \t\n") + ";"
}

// renderTraitLike renders a trait's header and opening brace verbatim,
// each contained function declaration as a four-space-indented elided
// signature, and a closing brace.
func renderTraitLike(node *ts.Node, source []byte) string {
	body := node.ChildByFieldName("body")
	if body == nil {
		return node.Utf8Text(source)
	}

	header := strings.TrimRight(string(source[node.StartByte():body.StartByte()]), " \t\n")

	var members []string
	for i := range body.NamedChildCount() {
		member := body.NamedChild(i)
		if member == nil || member.GrammarName() != "function_item" {
			continue
		}
		sig := renderFunctionLike(member, source)
		for _, line := range strings.Split(sig, "\n") {
			members = append(members, "    "+line)
		}
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString(" {\n")
	for _, m := range members {
		b.WriteString(m)
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// definitionName extracts the declared identifier from a definition node,
// via the grammar's "name" field where one exists.
func definitionName(node *ts.Node, source []byte) string {
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		return nameNode.Utf8Text(source)
	}
	// macro_rules! definitions expose their name as the first identifier
	// child rather than via a "name" field.
	for i := range node.NamedChildCount() {
		child := node.NamedChild(i)
		if child != nil && (child.GrammarName() == "identifier" || child.GrammarName() == "type_identifier") {
			return child.Utf8Text(source)
		}
	}
	return ""
}
