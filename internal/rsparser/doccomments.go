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

	ts "github.com/tree-sitter/go-tree-sitter"
)

// commentMarkerKind reports which doc-comment marker, if any, a
// line_comment/block_comment node carries as a direct or near-direct
// child. Rust's grammar tags `///`/`/** */` with outer_doc_comment_marker
// and `//!`/`/*! */` with inner_doc_comment_marker; everything else is a
// plain, non-doc comment.
func commentMarkerKind(node *ts.Node) string {
	kind := node.GrammarName()
	if kind != "line_comment" && kind != "block_comment" {
		return ""
	}
	for i := range node.ChildCount() {
		child := node.Child(i)
		if child == nil {
			continue
		}
		switch child.GrammarName() {
		case "outer_doc_comment_marker":
			return "outer"
		case "inner_doc_comment_marker":
			return "inner"
		case "doc_comment":
			// Some grammar versions wrap the text in a doc_comment node
			// whose own first child carries the marker.
			if m := commentMarkerKind(child); m != "" {
				return m
			}
		}
	}
	return ""
}

// outerDocComment scans backwards over node's previous named siblings,
// accepting consecutive outer-doc line comments and a single trailing
// outer-doc block comment, tolerating interleaved attribute items, and
// stopping at the first node that is neither. Returns the concatenated,
// source-order doc text, or "" if node has no attached outer doc comment.
func outerDocComment(node *ts.Node, source []byte) string {
	lines, _ := collectOuterPrefix(node, source)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n")
}

// collectOuterPrefix scans backwards from node exactly as outerDocComment
// does, but also gathers attribute_item text interleaved among the doc
// comments, and attributes that precede the item with no doc comment at
// all. docLines and attrLines are both returned in source order so
// renderDefinition can reconstruct "doc comment, then attributes, then
// item" -- the order attributes and doc comments actually appear in.
func collectOuterPrefix(node *ts.Node, source []byte) (docLines []string, attrLines []string) {
	if node == nil {
		return nil, nil
	}

	var doc []string
	var attrs []string
	sawBlock := false

	for prev := node.PrevNamedSibling(); prev != nil; prev = prev.PrevNamedSibling() {
		switch prev.GrammarName() {
		case "attribute_item":
			attrs = append(attrs, prev.Utf8Text(source))
			continue
		case "line_comment":
			if commentMarkerKind(prev) != "outer" {
				goto done
			}
			if sawBlock {
				goto done
			}
			doc = append(doc, prev.Utf8Text(source))
		case "block_comment":
			if commentMarkerKind(prev) != "outer" || len(doc) > 0 {
				goto done
			}
			sawBlock = true
			doc = append(doc, prev.Utf8Text(source))
		default:
			goto done
		}
	}

done:
	reverse(doc)
	reverse(attrs)
	return doc, attrs
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// innerDocComment collects a module block's (or a file's) own `//!`/`/*!`
// documentation: the run of inner-doc comments among its first direct
// children, stopping at the first child that is neither a doc comment nor
// the block's opening brace.
func innerDocComment(children []*ts.Node, source []byte) string {
	var lines []string
	for _, child := range children {
		switch child.GrammarName() {
		case "{":
			continue
		case "line_comment", "block_comment":
			if commentMarkerKind(child) != "inner" {
				return strings.Join(lines, "\n")
			}
			lines = append(lines, child.Utf8Text(source))
		default:
			return strings.Join(lines, "\n")
		}
	}
	return strings.Join(lines, "\n")
}
