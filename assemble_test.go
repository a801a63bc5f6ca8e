// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemaref Authors
// Source: github.com/schemaref/schemaref

package schemaref

import (
	"errors"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
)

func TestGenerateSingleTypeDocument(t *testing.T) {
	t.Parallel()

	schemaBytes := []byte(`{
		"$schema": "http://json-schema.org/draft-04/schema#",
		"title": "Foo",
		"type": "object",
		"properties": {
			"bar": {"type": "integer", "description": "A bar.", "minimum": 0}
		}
	}`)

	docs, err := Generate(schemaBytes, Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(docs) != 1 {
		t.Fatalf("document count mismatch\ngot:  %d\nwant: 1", len(docs))
	}

	if docs[0].FileName != "foo.md" {
		t.Fatalf("file name mismatch\ngot:  %q\nwant: %q", docs[0].FileName, "foo.md")
	}

	body := docs[0].Body
	assertContains(t, body, "# Foo\n")
	assertContains(t, body, "|   |Type|Description|Required|\n|---|---|---|---|\n")
	assertContains(t, body, "|**bar**|`integer`|A bar.|No|\n")
	assertContains(t, body, "## foo.bar\n")
	assertContains(t, body, "* **Type**: `integer`\n")
	assertContains(t, body, "* **Required**: No\n")
	assertContains(t, body, "* **Minimum**: `>= 0`\n")
	assertContains(t, body, "Additional properties are allowed.")
	assertNotContains(t, body, "WETZEL_WARNING")
}

func TestGenerateRequiredProperty(t *testing.T) {
	t.Parallel()

	schemaBytes := minimalSchemaBytes(t, map[string]any{
		"$schema": "http://json-schema.org/draft-04/schema#",
		"title":   "Config",
		"type":    "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
		},
		"required": []any{"name"},
	})

	docs, err := Generate(schemaBytes, Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	body := docs[0].Body
	assertContains(t, body, "|**name**|`string`||&#10003; Yes|\n")
	assertContains(t, body, "* **Required**: Yes\n")
}

func TestGenerateDefaultValueColumn(t *testing.T) {
	t.Parallel()

	schemaBytes := []byte(`{
		"title": "Config",
		"type": "object",
		"properties": {
			"count": {"type": "integer", "default": 2},
			"label": {"type": "string", "default": "none"}
		}
	}`)

	docs, err := Generate(schemaBytes, Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	body := docs[0].Body
	assertContains(t, body, "|No, default: 2|")
	assertContains(t, body, "|No, default: none|")
}

func TestGenerateUnrecognizedDialectWarning(t *testing.T) {
	t.Parallel()

	schemaBytes := minimalSchemaBytes(t, map[string]any{
		"$schema": "urn:example:custom-dialect",
		"title":   "Foo",
		"type":    "object",
		"properties": map[string]any{
			"bar": map[string]any{"type": "integer"},
		},
	})

	docs, err := Generate(schemaBytes, Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !strings.HasPrefix(docs[0].Body, "> WETZEL_WARNING: Unrecognized JSON Schema.\n\n") {
		t.Fatalf("warning prefix missing\ngot:\n%s", docs[0].Body)
	}

	suppressed, err := Generate(schemaBytes, Options{SuppressWarnings: true})
	if err != nil {
		t.Fatalf("Generate suppressed: %v", err)
	}

	assertNotContains(t, suppressed[0].Body, "WETZEL_WARNING")
}

func TestGenerateMissingRootTitle(t *testing.T) {
	t.Parallel()

	schemaBytes := minimalSchemaBytes(t, map[string]any{
		"type": "object",
		"properties": map[string]any{
			"bar": map[string]any{"type": "integer"},
		},
	})

	docs, err := Generate(schemaBytes, Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	assertContains(t, docs[0].Body, "# WETZEL_WARNING: title not defined\n")

	suppressed, err := Generate(schemaBytes, Options{SuppressWarnings: true})
	if err != nil {
		t.Fatalf("Generate suppressed: %v", err)
	}

	if suppressed[0].FileName != "root.md" {
		t.Fatalf("file name mismatch\ngot:  %q\nwant: %q", suppressed[0].FileName, "root.md")
	}

	assertContains(t, suppressed[0].Body, "# Root\n")
}

func TestGenerateTableOfContents(t *testing.T) {
	t.Parallel()

	schemaBytes := []byte(`{
		"title": "Root",
		"type": "object",
		"properties": {
			"child": {"$ref": "#/$defs/Child"}
		},
		"$defs": {
			"Child": {
				"title": "Root Child",
				"type": "object",
				"properties": {"x": {"type": "string"}}
			}
		}
	}`)

	docs, err := Generate(schemaBytes, Options{WriteTOC: true})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("document count mismatch\ngot:  %d\nwant: 2", len(docs))
	}

	var rootBody string
	for _, doc := range docs {
		if doc.FileName == "root.md" {
			rootBody = doc.Body
		}
	}

	assertContains(t, rootBody, "* [Root](root.md)\n    * [Child](root.child.md)\n")
	assertContains(t, rootBody, "|**child**|[`Root Child`](root.child.md)||No|\n")
}

func TestGenerateIgnorableTypes(t *testing.T) {
	t.Parallel()

	schemaBytes := []byte(`{
		"title": "Root",
		"type": "object",
		"properties": {
			"child": {"$ref": "#/$defs/Child"}
		},
		"$defs": {
			"Child": {"title": "Extras", "type": "object"}
		}
	}`)

	docs, err := Generate(schemaBytes, Options{IgnorableTypes: []string{"Extras"}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(docs) != 1 {
		t.Fatalf("document count mismatch\ngot:  %d\nwant: 1", len(docs))
	}

	_, err = Generate(schemaBytes, Options{
		SuppressWarnings: true,
		IgnorableTypes:   []string{"Root", "Extras"},
	})
	if !errors.Is(err, ErrMalformedTypeGraph) {
		t.Fatalf("error mismatch\ngot:  %v\nwant: %v", err, ErrMalformedTypeGraph)
	}
}

func TestGenerateSchemaFileLink(t *testing.T) {
	t.Parallel()

	schemaBytes := minimalSchemaBytes(t, map[string]any{
		"title": "Foo",
		"type":  "object",
		"properties": map[string]any{
			"bar": map[string]any{"type": "integer"},
		},
	})

	docs, err := Generate(schemaBytes, Options{
		FileName:               "foo.schema.json",
		SchemaRelativeBasePath: "schemas/",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	assertContains(t, docs[0].Body, "* **JSON schema**: [foo.schema.json](schemas/foo.schema.json)\n")
}

func TestGenerateEmbedModes(t *testing.T) {
	t.Parallel()

	schemaBytes := minimalSchemaBytes(t, map[string]any{
		"title": "Foo",
		"type":  "object",
		"properties": map[string]any{
			"bar": map[string]any{"type": "integer"},
		},
	})

	t.Run("writeIncludeStatements", func(t *testing.T) {
		t.Parallel()

		docs, err := Generate(schemaBytes, Options{
			FileName:  "foo.schema.json",
			EmbedMode: EmbedWriteIncludeStatements,
		})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}

		assertContains(t, docs[0].Body, "# Foo\n")
		assertContains(t, docs[0].Body, "{!foo.schema.json!}")
		assertNotContains(t, docs[0].Body, "Properties")
	})

	t.Run("referenceIncludeDocument", func(t *testing.T) {
		t.Parallel()

		docs, err := Generate(schemaBytes, Options{
			FileName:               "foo.schema.json",
			SchemaRelativeBasePath: "schemas/",
			EmbedMode:              EmbedReferenceIncludeDocument,
		})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}

		if len(docs) != 2 {
			t.Fatalf("document count mismatch\ngot:  %d\nwant: 2", len(docs))
		}

		var includeBody, mainBody string
		for _, doc := range docs {
			switch doc.FileName {
			case "foo.schema.md":
				includeBody = doc.Body
			case "foo.md":
				mainBody = doc.Body
			}
		}

		assertContains(t, includeBody, "{!schemas/foo.schema.json!}")
		assertContains(t, mainBody, "[foo.schema.json](foo.schema.md)")
	})
}

func TestGenerateAsciiDoctorStyle(t *testing.T) {
	t.Parallel()

	schemaBytes := minimalSchemaBytes(t, map[string]any{
		"title": "Foo",
		"type":  "object",
		"properties": map[string]any{
			"bar": map[string]any{"type": "integer", "minimum": float64(0)},
		},
	})

	docs, err := Generate(schemaBytes, Options{StyleMode: StyleAsciiDoctor})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if docs[0].FileName != "foo.adoc" {
		t.Fatalf("file name mismatch\ngot:  %q\nwant: %q", docs[0].FileName, "foo.adoc")
	}

	body := docs[0].Body
	assertContains(t, body, "= Foo\n")
	assertContains(t, body, "|===\n")
	assertContains(t, body, "* *Minimum*: `>= 0`\n")
}

func TestGenerateCustomGlyphAndKeyword(t *testing.T) {
	t.Parallel()

	schemaBytes := []byte(`{
		"title": "Foo",
		"type": "object",
		"properties": {
			"bar": {"type": "integer", "minimum": 1, "maximum": 9}
		},
		"required": ["bar"]
	}`)

	docs, err := Generate(schemaBytes, Options{Checkmark: "x", MustKeyword: "shall"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	body := docs[0].Body
	assertContains(t, body, "|x Yes|\n")
	assertContains(t, body, "The value **shall** be greater than or equal to 1 and less than or equal to 9.")
}

func TestGenerateInvalidOptions(t *testing.T) {
	t.Parallel()

	schemaBytes := minimalSchemaBytes(t, map[string]any{"title": "Foo", "type": "object"})

	tests := []struct {
		name    string
		options Options
		want    error
	}{
		{"style", Options{StyleMode: "HTML"}, ErrUnknownStyleMode},
		{"autoLink", Options{AutoLink: "eager"}, ErrUnknownAutoLinkMode},
		{"embed", Options{EmbedMode: "inline"}, ErrUnknownEmbedMode},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := Generate(schemaBytes, test.options)
			if !errors.Is(err, test.want) {
				t.Fatalf("error mismatch\ngot:  %v\nwant: %v", err, test.want)
			}
		})
	}
}

func TestGenerateDecodeFailure(t *testing.T) {
	t.Parallel()

	_, err := Generate([]byte("   "), Options{})
	if !errors.Is(err, ErrDecodeSchema) {
		t.Fatalf("error mismatch\ngot:  %v\nwant: %v", err, ErrDecodeSchema)
	}
}

// minimalSchemaBytes marshals one schema fixture map into JSON bytes.
func minimalSchemaBytes(t *testing.T, schema map[string]any) []byte {
	t.Helper()

	data, err := json.Marshal(schema)
	if err != nil {
		t.Fatalf("marshal schema fixture: %v", err)
	}

	return data
}

// mustParseSchema parses one raw schema document or fails the test.
func mustParseSchema(t *testing.T, raw string) *SchemaNode {
	t.Helper()

	node, err := ParseSchemaBytes([]byte(raw))
	if err != nil {
		t.Fatalf("parse schema fixture: %v", err)
	}

	return node
}

// newTestContext builds a Markdown render context over the given graph.
func newTestContext(t *testing.T, graph *TypeGraph) renderContext {
	t.Helper()

	style, err := newStyle(StyleMarkdown, "", "")
	if err != nil {
		t.Fatalf("new style: %v", err)
	}

	if graph == nil {
		graph = NewTypeGraph()
	}

	return renderContext{
		style:            style,
		graph:            graph,
		descendingTitles: graph.DescendingTitles(),
		autoLinkMode:     AutoLinkAggressive,
		embedMode:        EmbedNone,
		headerLevel:      1,
	}
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("output does not contain %q\noutput:\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("output unexpectedly contains %q\noutput:\n%s", needle, haystack)
	}
}

func intPtr(value int) *int {
	return &value
}
