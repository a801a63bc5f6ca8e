// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemaref Authors
// Source: github.com/schemaref/schemaref

package schemaref

import (
	"reflect"
	"testing"
)

func TestTypeGraphAddIsIdempotent(t *testing.T) {
	t.Parallel()

	graph := NewTypeGraph()
	first := graph.Add("Animal", &SchemaNode{Title: "Animal"}, "animal.schema.json")
	second := graph.Add("Animal", &SchemaNode{Title: "Animal"}, "other.schema.json")

	if first != second {
		t.Fatal("repeat Add created a second node for the same title")
	}

	if graph.Len() != 1 {
		t.Fatalf("graph size mismatch\ngot:  %d\nwant: 1", graph.Len())
	}

	if first.FileName != "animal.schema.json" {
		t.Fatalf("file name mismatch\ngot:  %q\nwant: %q", first.FileName, "animal.schema.json")
	}
}

func TestTypeGraphLink(t *testing.T) {
	t.Parallel()

	graph := NewTypeGraph()
	graph.Add("Parent", &SchemaNode{}, "")
	graph.Add("Child", &SchemaNode{}, "")

	graph.Link("Parent", "Child")
	graph.Link("Parent", "Parent")
	graph.Link("Parent", "Unknown")
	graph.Link("", "Child")

	parent, _ := graph.Node("Parent")
	if !reflect.DeepEqual(parent.Children, []string{"Child"}) {
		t.Fatalf("children mismatch\ngot:  %#v\nwant: %#v", parent.Children, []string{"Child"})
	}

	child, _ := graph.Node("Child")
	if _, ok := child.Parents["Parent"]; !ok {
		t.Fatal("parent relation not recorded on child")
	}
}

func TestTypeGraphSortChildren(t *testing.T) {
	t.Parallel()

	graph := NewTypeGraph()
	graph.Add("Parent", &SchemaNode{}, "")
	for _, title := range []string{"Zebra", "Ant", "Moth", "Ant"} {
		graph.Add(title, &SchemaNode{}, "")
	}

	graph.Link("Parent", "Zebra")
	graph.Link("Parent", "Ant")
	graph.Link("Parent", "Moth")
	graph.Link("Parent", "Ant")

	graph.SortChildren()

	parent, _ := graph.Node("Parent")
	want := []string{"Ant", "Moth", "Zebra"}
	if !reflect.DeepEqual(parent.Children, want) {
		t.Fatalf("children mismatch\ngot:  %#v\nwant: %#v", parent.Children, want)
	}
}

func TestTypeGraphTitleOrders(t *testing.T) {
	t.Parallel()

	graph := NewTypeGraph()
	for _, title := range []string{"Moth", "Ant", "Zebra"} {
		graph.Add(title, &SchemaNode{}, "")
	}

	ascending := graph.AscendingTitles()
	wantAscending := []string{"Ant", "Moth", "Zebra"}
	if !reflect.DeepEqual(ascending, wantAscending) {
		t.Fatalf("ascending mismatch\ngot:  %#v\nwant: %#v", ascending, wantAscending)
	}

	descending := graph.DescendingTitles()
	for index := range ascending {
		if descending[len(descending)-1-index] != ascending[index] {
			t.Fatalf("descending is not the exact reverse of ascending\ngot:  %#v", descending)
		}
	}
}

func TestTypeGraphDocumentID(t *testing.T) {
	t.Parallel()

	graph := NewTypeGraph()
	graph.Add("Animation Channel Target", &SchemaNode{}, "")
	graph.Add("Buffer", &SchemaNode{TypeName: "buffer.view"}, "")

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"fromTitle", "Animation Channel Target", "animation.channel.target"},
		{"fromTypeName", "Buffer", "buffer.view"},
		{"unregistered", "Missing Type", "missing.type"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if got := graph.DocumentID(test.title); got != test.want {
				t.Fatalf("document id mismatch\ngot:  %q\nwant: %q", got, test.want)
			}

			if got := graph.DocumentFile(test.title, ".md"); got != test.want+".md" {
				t.Fatalf("document file mismatch\ngot:  %q\nwant: %q", got, test.want+".md")
			}
		})
	}
}
