// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemaref Authors
// Source: github.com/schemaref/schemaref

package schemaref

import (
	"strings"
)

// buildTableOfContents renders the nested bullet outline for the type graph.
//
// Top-level entries are the root type and every type with more than one
// parent. A listed type's children are nested beneath it only when the child
// has exactly one parent; multi-parent children are promoted to the top level
// instead of being duplicated under every parent. Nested child labels strip
// the conventional "<parent title> " prefix.
func buildTableOfContents(rootTitle string, ctx renderContext) string {
	var out strings.Builder

	if _, ok := ctx.graph.Node(rootTitle); ok {
		out.WriteString(ctx.tocEntry(rootTitle, rootTitle, 0))
		ctx.writeTOCChildren(&out, rootTitle, 1, map[string]struct{}{rootTitle: {}})
	}

	for _, title := range ctx.graph.AscendingTitles() {
		if title == rootTitle {
			continue
		}

		node, ok := ctx.graph.Node(title)
		if !ok || len(node.Parents) <= 1 {
			continue
		}

		out.WriteString(ctx.tocEntry(title, title, 0))
		ctx.writeTOCChildren(&out, title, 1, map[string]struct{}{title: {}})
	}

	body := out.String()
	if body == "" {
		return ""
	}

	return body + "\n"
}

// writeTOCChildren nests the single-parent children of one listed type.
func (ctx renderContext) writeTOCChildren(out *strings.Builder, parentTitle string, depth int, seen map[string]struct{}) {
	node, ok := ctx.graph.Node(parentTitle)
	if !ok {
		return
	}

	for _, childTitle := range node.Children {
		child, ok := ctx.graph.Node(childTitle)
		if !ok || len(child.Parents) != 1 {
			continue
		}

		if _, visited := seen[childTitle]; visited {
			continue
		}

		seen[childTitle] = struct{}{}
		display := strings.TrimPrefix(childTitle, parentTitle+" ")
		out.WriteString(ctx.tocEntry(childTitle, display, depth))
		ctx.writeTOCChildren(out, childTitle, depth+1, seen)
	}
}

// tocEntry renders one outline bullet linking to a type's document.
func (ctx renderContext) tocEntry(title, display string, depth int) string {
	target := ctx.graph.DocumentFile(title, ctx.style.Extension())
	return ctx.style.Bullet(depth, ctx.style.Link(display, target))
}
