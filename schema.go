// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemaref Authors
// Source: github.com/schemaref/schemaref

package schemaref

import (
	"bytes"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// SchemaNode is one schema fragment of the resolved type graph.
//
// Every field is optional; absent fields render as absent output rather than
// failing. Property order is preserved through decoding so the rendered
// per-property sections follow declaration order.
type SchemaNode struct {
	Schema              string `json:"$schema,omitempty"`
	Ref                 string `json:"$ref,omitempty"`
	Title               string `json:"title,omitempty"`
	TypeName            string `json:"typeName,omitempty"`
	Description         string `json:"description,omitempty"`
	DetailedDescription string `json:"x-detailedDescription,omitempty"`

	Type       any                                         `json:"type,omitempty"`
	Properties *orderedmap.OrderedMap[string, *SchemaNode] `json:"properties,omitempty"`

	// AdditionalProperties carries the boolean-or-schema keyword form.
	AdditionalProperties *AdditionalProperties `json:"additionalProperties,omitempty"`

	// Required is a parent-level name list in draft-04 and newer, and a
	// property-level boolean in draft-03.
	Required any `json:"required,omitempty"`

	Enum      []any           `json:"enum,omitempty"`
	EnumNames []string        `json:"enumNames,omitempty"`
	Const     json.RawMessage `json:"const,omitempty"`

	AnyOf []*SchemaNode `json:"anyOf,omitempty"`
	AllOf []*SchemaNode `json:"allOf,omitempty"`
	OneOf []*SchemaNode `json:"oneOf,omitempty"`

	Items       *ItemsSchema `json:"items,omitempty"`
	MinItems    *int         `json:"minItems,omitempty"`
	MaxItems    *int         `json:"maxItems,omitempty"`
	UniqueItems bool         `json:"uniqueItems,omitempty"`

	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// ExclusiveMinimum and ExclusiveMaximum hold the numeric boundary in
	// newer dialects and a boolean paired with Minimum/Maximum in older
	// ones; normalizeRange rewrites both encodings into one form.
	ExclusiveMinimum any `json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum any `json:"exclusiveMaximum,omitempty"`

	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
	Format    string `json:"format,omitempty"`

	Default  json.RawMessage `json:"default,omitempty"`
	Examples []any           `json:"examples,omitempty"`

	Defs        map[string]*SchemaNode `json:"$defs,omitempty"`
	Definitions map[string]*SchemaNode `json:"definitions,omitempty"`
}

// ItemsSchema accepts both the single-schema and tuple forms of "items" and
// keeps the first tuple entry for rendering.
type ItemsSchema struct {
	*SchemaNode
}

// UnmarshalJSON decodes items as schema object or schema tuple.
func (items *ItemsSchema) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []*SchemaNode
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}

		if len(list) > 0 {
			items.SchemaNode = list[0]
		}

		return nil
	}

	var node SchemaNode
	if err := json.Unmarshal(trimmed, &node); err != nil {
		return err
	}

	items.SchemaNode = &node
	return nil
}

// AdditionalProperties models the boolean-or-schema "additionalProperties" keyword.
type AdditionalProperties struct {
	Allowed *bool
	Schema  *SchemaNode
}

// UnmarshalJSON decodes additionalProperties as boolean or nested schema.
func (props *AdditionalProperties) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("true")) || bytes.Equal(trimmed, []byte("false")) {
		allowed := trimmed[0] == 't'
		props.Allowed = &allowed
		return nil
	}

	var node SchemaNode
	if err := json.Unmarshal(trimmed, &node); err != nil {
		return err
	}

	props.Schema = &node
	return nil
}

// typeString returns the declared type as display string, taking the first
// entry when type is a list.
func (node *SchemaNode) typeString() string {
	if node == nil || node.Type == nil {
		return ""
	}

	switch typed := node.Type.(type) {
	case string:
		return typed
	case []any:
		for _, entry := range typed {
			if name, ok := entry.(string); ok {
				return name
			}
		}

		return ""
	default:
		return ""
	}
}

// isType reports whether node declares the given primitive type.
func (node *SchemaNode) isType(name string) bool {
	return node != nil && node.typeString() == name
}

// constValue returns the declared const value and its presence.
func (node *SchemaNode) constValue() (any, bool) {
	if node == nil || len(node.Const) == 0 {
		return nil, false
	}

	var value any
	if err := json.Unmarshal(node.Const, &value); err != nil {
		return nil, false
	}

	return value, true
}

// defaultValue returns the declared default value and its presence.
func (node *SchemaNode) defaultValue() (any, bool) {
	if node == nil || len(node.Default) == 0 {
		return nil, false
	}

	var value any
	if err := json.Unmarshal(node.Default, &value); err != nil {
		return nil, false
	}

	return value, true
}

// requiredNames returns the draft-04 style required property name list.
func (node *SchemaNode) requiredNames() []string {
	if node == nil {
		return nil
	}

	list, ok := node.Required.([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(list))
	for _, entry := range list {
		if name, ok := entry.(string); ok {
			out = append(out, name)
		}
	}

	return out
}

// selfRequired reports the draft-03 style property-level required boolean.
func (node *SchemaNode) selfRequired() bool {
	if node == nil {
		return false
	}

	value, ok := node.Required.(bool)
	return ok && value
}

// definitionsMap returns local reusable definitions under $defs or definitions.
func (node *SchemaNode) definitionsMap() map[string]*SchemaNode {
	if node == nil {
		return nil
	}

	if len(node.Defs) > 0 {
		return node.Defs
	}

	return node.Definitions
}

// itemsSchema returns the items schema when present.
func (node *SchemaNode) itemsSchema() *SchemaNode {
	if node == nil || node.Items == nil {
		return nil
	}

	return node.Items.SchemaNode
}

// DraftInfo describes the detected JSON Schema dialect of a document.
type DraftInfo struct {
	// URI is the raw $schema value.
	URI string
	// Canonical is the short dialect name, for example "draft-04".
	Canonical string
	// Recognized reports whether the dialect is one of the supported drafts.
	// Unrecognized dialects are handled as draft-04 compatible with a warning.
	Recognized bool
}

// knownDrafts maps $schema URI markers to canonical dialect names.
var knownDrafts = []struct {
	Marker    string
	Canonical string
}{
	{"draft-03", "draft-03"},
	{"draft-04", "draft-04"},
	{"draft-06", "draft-06"},
	{"draft-07", "draft-07"},
	{"2019-09", "2019-09"},
	{"2020-12", "2020-12"},
}

// DetectDraft detects the schema dialect from a raw $schema value.
func DetectDraft(uri string) DraftInfo {
	trimmed := strings.TrimSpace(uri)
	for _, draft := range knownDrafts {
		if strings.Contains(trimmed, draft.Marker) {
			return DraftInfo{URI: uri, Canonical: draft.Canonical, Recognized: true}
		}
	}

	return DraftInfo{URI: uri, Canonical: "draft-04", Recognized: false}
}

// ParseSchemaBytes decodes one schema document from JSON or YAML bytes.
func ParseSchemaBytes(data []byte) (*SchemaNode, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDecodeSchema)
	}

	if trimmed[0] != '{' {
		converted, err := yamlToJSON(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
		}

		trimmed = converted
	}

	node := &SchemaNode{}
	if err := json.Unmarshal(trimmed, node); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	return node, nil
}

// yamlToJSON converts one YAML document into JSON bytes preserving mapping order.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return []byte("null"), nil
		}

		root = root.Content[0]
	}

	var out bytes.Buffer
	if err := writeYAMLNodeJSON(&out, root); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// writeYAMLNodeJSON encodes one YAML node as JSON, keeping mapping key order.
func writeYAMLNodeJSON(out *bytes.Buffer, node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		out.WriteByte('{')
		for index := 0; index+1 < len(node.Content); index += 2 {
			if index > 0 {
				out.WriteByte(',')
			}

			key, err := json.Marshal(node.Content[index].Value)
			if err != nil {
				return err
			}

			out.Write(key)
			out.WriteByte(':')
			if err := writeYAMLNodeJSON(out, node.Content[index+1]); err != nil {
				return err
			}
		}

		out.WriteByte('}')
		return nil
	case yaml.SequenceNode:
		out.WriteByte('[')
		for index, entry := range node.Content {
			if index > 0 {
				out.WriteByte(',')
			}

			if err := writeYAMLNodeJSON(out, entry); err != nil {
				return err
			}
		}

		out.WriteByte(']')
		return nil
	case yaml.ScalarNode:
		return writeYAMLScalarJSON(out, node)
	case yaml.AliasNode:
		if node.Alias != nil {
			return writeYAMLNodeJSON(out, node.Alias)
		}

		out.WriteString("null")
		return nil
	default:
		out.WriteString("null")
		return nil
	}
}

// writeYAMLScalarJSON encodes one YAML scalar as typed JSON value.
func writeYAMLScalarJSON(out *bytes.Buffer, node *yaml.Node) error {
	var value any
	if err := node.Decode(&value); err != nil {
		return err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	out.Write(encoded)
	return nil
}
