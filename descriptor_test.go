// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemaref Authors
// Source: github.com/schemaref/schemaref

package schemaref

import (
	"testing"
)

func TestArrayBrackets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		minItems *int
		maxItems *int
		want     string
	}{
		{"fixed", intPtr(3), intPtr(3), "[3]"},
		{"range", intPtr(1), intPtr(4), "[1-4]"},
		{"minOnly", intPtr(2), nil, "[2-*]"},
		{"maxOnly", nil, intPtr(5), "[*-5]"},
		{"unbounded", nil, nil, "[]"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if got := arrayBrackets(test.minItems, test.maxItems); got != test.want {
				t.Fatalf("brackets mismatch\ngot:  %q\nwant: %q", got, test.want)
			}
		})
	}
}

func TestPropertyType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"typeName", `{"typeName": "buffer.view", "type": "object"}`, "buffer.view"},
		{"declaredType", `{"type": "integer"}`, "integer"},
		{"anyOfBranch", `{"anyOf": [{"const": 0}, {"type": "integer"}]}`, "integer"},
		{"untyped", `{"description": "anything"}`, "any"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if got := propertyType(mustParseSchema(t, test.raw)); got != test.want {
				t.Fatalf("type mismatch\ngot:  %q\nwant: %q", got, test.want)
			}
		})
	}
}

func TestFormattedType(t *testing.T) {
	t.Parallel()

	graph := NewTypeGraph()
	thing := &SchemaNode{Title: "Thing", Type: "object"}
	graph.Add("Thing", thing, "")
	ctx := newTestContext(t, graph)

	t.Run("scalar", func(t *testing.T) {
		t.Parallel()

		got := formattedType(mustParseSchema(t, `{"type": "string"}`), ctx)
		if got != "`string`" {
			t.Fatalf("type mismatch\ngot:  %q\nwant: %q", got, "`string`")
		}
	})

	t.Run("scalarArray", func(t *testing.T) {
		t.Parallel()

		got := formattedType(mustParseSchema(t, `{"type": "array", "items": {"type": "number"}, "minItems": 2, "maxItems": 2}`), ctx)
		if got != "`number[2]`" {
			t.Fatalf("type mismatch\ngot:  %q\nwant: %q", got, "`number[2]`")
		}
	})

	t.Run("linkedObject", func(t *testing.T) {
		t.Parallel()

		got := formattedType(thing, ctx)
		if got != "[`Thing`](thing.md)" {
			t.Fatalf("type mismatch\ngot:  %q\nwant: %q", got, "[`Thing`](thing.md)")
		}
	})

	t.Run("linkedObjectArray", func(t *testing.T) {
		t.Parallel()

		prop := &SchemaNode{Type: "array", Items: &ItemsSchema{SchemaNode: thing}, MinItems: intPtr(1)}
		got := formattedType(prop, ctx)
		if got != "[`Thing`](thing.md)`[1-*]`" {
			t.Fatalf("type mismatch\ngot:  %q\nwant: %q", got, "[`Thing`](thing.md)`[1-*]`")
		}
	})

	t.Run("untypedArray", func(t *testing.T) {
		t.Parallel()

		got := formattedType(mustParseSchema(t, `{"type": "array"}`), ctx)
		if got != "`array[]`" {
			t.Fatalf("type mismatch\ngot:  %q\nwant: %q", got, "`array[]`")
		}
	})
}

func TestRequiredString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		raw            string
		parentRequired []string
		want           string
	}{
		{"parentList", `{"type": "string"}`, []string{"field"}, "Yes"},
		{"selfBoolean", `{"type": "string", "required": true}`, nil, "Yes"},
		{"withNumericDefault", `{"type": "integer", "default": 2}`, nil, "No, default: 2"},
		{"withStringDefault", `{"type": "string", "default": "auto"}`, nil, "No, default: auto"},
		{"withArrayDefault", `{"type": "array", "default": [0, 1]}`, nil, "No, default: [0,1]"},
		{"optional", `{"type": "string"}`, nil, "No"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			prop := mustParseSchema(t, test.raw)
			if got := requiredString("field", prop, test.parentRequired); got != test.want {
				t.Fatalf("required mismatch\ngot:  %q\nwant: %q", got, test.want)
			}
		})
	}
}

func TestExtractDescriptorLinksDescription(t *testing.T) {
	t.Parallel()

	graph := NewTypeGraph()
	graph.Add("Widget", &SchemaNode{Title: "Widget", Type: "object"}, "")
	ctx := newTestContext(t, graph)

	prop := mustParseSchema(t, `{"type": "integer", "description": "Index of the Widget."}`)
	descriptor := extractDescriptor("widget", prop, nil, ctx)

	if descriptor.Type != "integer" {
		t.Fatalf("type mismatch\ngot:  %q\nwant: %q", descriptor.Type, "integer")
	}

	if descriptor.Description != "Index of the [Widget](widget.md)." {
		t.Fatalf("description mismatch\ngot:  %q", descriptor.Description)
	}
}
