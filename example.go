// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemaref Authors
// Source: github.com/schemaref/schemaref

package schemaref

import (
	"fmt"
	"slices"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

const (
	// ExampleModeAll builds the example with all declared properties.
	ExampleModeAll ExampleMode = "all"
	// ExampleModeRequired builds the example with required properties only.
	ExampleModeRequired ExampleMode = "required"
)

// ExampleMode configures example generation property coverage.
type ExampleMode string

const (
	// ExampleFormatJSON encodes the example payload as JSON.
	ExampleFormatJSON ExampleFormat = "json"
	// ExampleFormatYAML encodes the example payload as YAML.
	ExampleFormatYAML ExampleFormat = "yaml"
)

// ExampleFormat configures the output encoding for example payloads.
type ExampleFormat string

// exampleScalarPlaceholders provides fallback values for scalar schema types.
var exampleScalarPlaceholders = map[string]any{
	"string":  "<string>",
	"number":  0,
	"integer": 0,
	"boolean": false,
	"null":    nil,
}

// exampleBuilder converts the resolved schema tree into example values.
type exampleBuilder struct {
	mode   ExampleMode
	active map[*SchemaNode]struct{}
}

// GenerateExample builds an example payload from schema bytes, resolving
// references through the given options, and encodes it in the selected format.
func GenerateExample(schemaBytes []byte, mode ExampleMode, format ExampleFormat, opt ResolveOptions) ([]byte, error) {
	mode, err := normalizeExampleMode(mode)
	if err != nil {
		return nil, err
	}

	format, err = normalizeExampleFormat(format)
	if err != nil {
		return nil, err
	}

	root, err := ParseSchemaBytes(schemaBytes)
	if err != nil {
		return nil, err
	}

	resolved, err := ResolveSchema(root, opt)
	if err != nil {
		return nil, err
	}

	builder := exampleBuilder{
		mode:   mode,
		active: make(map[*SchemaNode]struct{}),
	}

	value := builder.buildNode(resolved.Schema)
	switch format {
	case ExampleFormatYAML:
		data, err := yaml.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeExample, err)
		}

		return data, nil
	default:
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeExample, err)
		}

		return append(data, '\n'), nil
	}
}

// buildNode produces one example value for a schema node, preferring declared
// defaults, examples and enumeration values over typed placeholders.
func (builder *exampleBuilder) buildNode(node *SchemaNode) any {
	if node == nil {
		return nil
	}

	if _, cycling := builder.active[node]; cycling {
		return nil
	}

	builder.active[node] = struct{}{}
	defer delete(builder.active, node)

	if value, ok := node.defaultValue(); ok {
		return value
	}

	if len(node.Examples) > 0 {
		return node.Examples[0]
	}

	if value, ok := node.constValue(); ok {
		return value
	}

	if len(node.Enum) > 0 {
		return node.Enum[0]
	}

	switch node.typeString() {
	case "object":
		return builder.buildObject(node)
	case "array":
		if items := node.itemsSchema(); items != nil {
			return []any{builder.buildNode(items)}
		}

		return []any{}
	case "":
		for _, branch := range node.AnyOf {
			if branch.typeString() != "" {
				return builder.buildNode(branch)
			}
		}

		if node.Properties != nil && node.Properties.Len() > 0 {
			return builder.buildObject(node)
		}

		return nil
	default:
		if placeholder, ok := exampleScalarPlaceholders[node.typeString()]; ok {
			return placeholder
		}

		return nil
	}
}

// buildObject produces one example object honoring the coverage mode.
func (builder *exampleBuilder) buildObject(node *SchemaNode) map[string]any {
	out := make(map[string]any)
	if node.Properties == nil {
		return out
	}

	required := node.requiredNames()
	for pair := node.Properties.Oldest(); pair != nil; pair = pair.Next() {
		if builder.mode == ExampleModeRequired {
			if !pair.Value.selfRequired() && !slices.Contains(required, pair.Key) {
				continue
			}
		}

		out[pair.Key] = builder.buildNode(pair.Value)
	}

	return out
}

// normalizeExampleMode validates and normalizes the caller mode value.
func normalizeExampleMode(mode ExampleMode) (ExampleMode, error) {
	normalized := ExampleMode(strings.ToLower(strings.TrimSpace(string(mode))))
	switch normalized {
	case "":
		return ExampleModeAll, nil
	case ExampleModeAll, ExampleModeRequired:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleMode, mode)
	}
}

// normalizeExampleFormat validates and normalizes the caller format value.
func normalizeExampleFormat(format ExampleFormat) (ExampleFormat, error) {
	normalized := ExampleFormat(strings.ToLower(strings.TrimSpace(string(format))))
	switch normalized {
	case "":
		return ExampleFormatJSON, nil
	case ExampleFormatJSON, ExampleFormatYAML:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleFormat, format)
	}
}
