// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemaref Authors
// Source: github.com/schemaref/schemaref

package schemaref

import (
	"sort"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// GraphNode is one referenced type in the resolved type graph.
type GraphNode struct {
	// Schema is the resolved schema fragment for this type.
	Schema *SchemaNode
	// FileName is the source schema file this type was loaded from.
	FileName string
	// Parents holds the titles of every type referencing this one.
	Parents map[string]struct{}
	// Children holds the titles referenced by this type, sorted after the
	// one-time SortChildren pass.
	Children []string
}

// TypeGraph maps type titles to graph nodes with stable insertion iteration.
//
// Titles are unique and parent/child relations are mutual. The graph is
// read-only after resolution except for the one-time child-list sort.
type TypeGraph struct {
	nodes *orderedmap.OrderedMap[string, *GraphNode]
}

// NewTypeGraph returns an empty type graph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{nodes: orderedmap.New[string, *GraphNode]()}
}

// Add registers one titled schema, reusing the existing node on repeat titles.
func (graph *TypeGraph) Add(title string, schema *SchemaNode, fileName string) *GraphNode {
	if node, ok := graph.nodes.Get(title); ok {
		return node
	}

	node := &GraphNode{
		Schema:   schema,
		FileName: fileName,
		Parents:  make(map[string]struct{}),
	}
	graph.nodes.Set(title, node)
	return node
}

// Link records one mutual parent/child relation between two registered titles.
func (graph *TypeGraph) Link(parentTitle, childTitle string) {
	if parentTitle == "" || childTitle == "" || parentTitle == childTitle {
		return
	}

	parent, ok := graph.nodes.Get(parentTitle)
	if !ok {
		return
	}

	child, ok := graph.nodes.Get(childTitle)
	if !ok {
		return
	}

	child.Parents[parentTitle] = struct{}{}
	parent.Children = append(parent.Children, childTitle)
}

// Node returns the graph node registered under the given title.
func (graph *TypeGraph) Node(title string) (*GraphNode, bool) {
	return graph.nodes.Get(title)
}

// Len returns the number of registered types.
func (graph *TypeGraph) Len() int {
	return graph.nodes.Len()
}

// AscendingTitles returns all titles sorted alphabetically, used for stable
// document iteration.
func (graph *TypeGraph) AscendingTitles() []string {
	out := make([]string, 0, graph.nodes.Len())
	for pair := graph.nodes.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	sort.Strings(out)
	return out
}

// DescendingTitles returns the exact reverse of AscendingTitles, used for
// longest-match-first auto-linking.
func (graph *TypeGraph) DescendingTitles() []string {
	ascending := graph.AscendingTitles()
	out := make([]string, 0, len(ascending))
	for index := len(ascending) - 1; index >= 0; index-- {
		out = append(out, ascending[index])
	}

	return out
}

// SortChildren sorts and deduplicates every node's children list in place.
func (graph *TypeGraph) SortChildren() {
	for pair := graph.nodes.Oldest(); pair != nil; pair = pair.Next() {
		node := pair.Value
		if len(node.Children) < 2 {
			continue
		}

		sort.Strings(node.Children)
		deduped := node.Children[:1]
		for _, title := range node.Children[1:] {
			if title == deduped[len(deduped)-1] {
				continue
			}

			deduped = append(deduped, title)
		}

		node.Children = deduped
	}
}

// DocumentID returns the document identifier used as link target and filename
// stem: explicit typeName when present, else the title lowercased with spaces
// replaced by dots.
func (graph *TypeGraph) DocumentID(title string) string {
	if node, ok := graph.nodes.Get(title); ok && node.Schema != nil && node.Schema.TypeName != "" {
		return node.Schema.TypeName
	}

	return strings.ReplaceAll(strings.ToLower(title), " ", ".")
}

// DocumentFile returns the output document filename for one type.
func (graph *TypeGraph) DocumentFile(title, extension string) string {
	return graph.DocumentID(title) + extension
}
