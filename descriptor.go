// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemaref Authors
// Source: github.com/schemaref/schemaref

package schemaref

import (
	"slices"
	"strconv"
)

// PropertyDescriptor is the uniform per-property descriptor derived for
// rendering; it is recomputed on every render pass and never persisted.
type PropertyDescriptor struct {
	// Type is the resolved base type name.
	Type string
	// FormattedType is the styled type cell, including array cardinality
	// brackets and type links.
	FormattedType string
	// Description is the auto-linked property description.
	Description string
	// Required is "Yes", "No", or "No, default: <value>".
	Required string
}

// extractDescriptor derives the descriptor for one property across all
// supported schema dialects.
func extractDescriptor(name string, prop *SchemaNode, parentRequired []string, ctx renderContext) PropertyDescriptor {
	return PropertyDescriptor{
		Type:          propertyType(prop),
		FormattedType: formattedType(prop, ctx),
		Description:   ctx.linkText(sanitizeText(propDescription(prop))),
		Required:      requiredString(name, prop, parentRequired),
	}
}

// propertyType resolves the base type name: explicit typeName first, then the
// type field, then the first anyOf branch declaring a type, defaulting to any.
func propertyType(prop *SchemaNode) string {
	if prop == nil {
		return "any"
	}

	if prop.TypeName != "" {
		return prop.TypeName
	}

	if name := prop.typeString(); name != "" {
		return name
	}

	for _, branch := range prop.AnyOf {
		if name := branch.typeString(); name != "" {
			return name
		}
	}

	return "any"
}

// formattedType renders the styled type text, appending array cardinality
// brackets and linking object types registered in the type graph.
func formattedType(prop *SchemaNode, ctx renderContext) string {
	base := propertyType(prop)
	if prop != nil && prop.isType("array") {
		brackets := arrayBrackets(prop.MinItems, prop.MaxItems)
		items := prop.itemsSchema()
		if items != nil {
			itemBase := items.TypeName
			if itemBase == "" {
				itemBase = items.typeString()
			}

			if itemBase != "" {
				if link, ok := ctx.typeLinkFor(items); ok {
					return link + ctx.style.Code(brackets)
				}

				return ctx.style.TypeValue(itemBase + brackets)
			}
		}

		return ctx.style.TypeValue(base + brackets)
	}

	if link, ok := ctx.typeLinkFor(prop); ok {
		return link
	}

	return ctx.style.TypeValue(base)
}

// arrayBrackets computes the bracketed cardinality suffix from item bounds.
func arrayBrackets(minItems, maxItems *int) string {
	switch {
	case minItems != nil && maxItems != nil && *minItems == *maxItems:
		return "[" + strconv.Itoa(*minItems) + "]"
	case minItems != nil && maxItems != nil:
		return "[" + strconv.Itoa(*minItems) + "-" + strconv.Itoa(*maxItems) + "]"
	case minItems != nil:
		return "[" + strconv.Itoa(*minItems) + "-*]"
	case maxItems != nil:
		return "[*-" + strconv.Itoa(*maxItems) + "]"
	default:
		return "[]"
	}
}

// requiredString resolves the required column value for one property.
//
// Draft-03 marks the property itself with a required boolean; draft-04 and
// newer list required names on the parent. Both are honored.
func requiredString(name string, prop *SchemaNode, parentRequired []string) string {
	if prop != nil && prop.selfRequired() {
		return "Yes"
	}

	if slices.Contains(parentRequired, name) {
		return "Yes"
	}

	if value, ok := prop.defaultValue(); ok {
		return "No, default: " + defaultText(value)
	}

	return "No"
}

// defaultText renders one default value: strings bare, arrays as
// bracket-joined lists and objects in their literal structural form.
func defaultText(value any) string {
	if text, ok := value.(string); ok {
		return text
	}

	return jsonInline(value)
}

// propDescription returns the property description, guarded for nil nodes.
func propDescription(prop *SchemaNode) string {
	if prop == nil {
		return ""
	}

	return prop.Description
}
