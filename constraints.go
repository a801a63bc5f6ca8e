// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemaref Authors
// Source: github.com/schemaref/schemaref

package schemaref

import (
	"strconv"
)

// numericRange is the normalized boundary form shared by all dialects:
// boolean exclusivity flags paired with plain minimum/maximum values.
type numericRange struct {
	minimum          *float64
	maximum          *float64
	exclusiveMinimum bool
	exclusiveMaximum bool
}

// present reports whether any boundary is declared.
func (bounds numericRange) present() bool {
	return bounds.minimum != nil || bounds.maximum != nil
}

// normalizeRange rewrites numeric exclusiveMinimum/exclusiveMaximum fields
// (newer dialects) into the boolean+minimum/maximum form used by older
// dialects, so one formatting path handles both encodings.
func normalizeRange(node *SchemaNode) numericRange {
	bounds := numericRange{minimum: node.Minimum, maximum: node.Maximum}

	switch typed := node.ExclusiveMinimum.(type) {
	case bool:
		bounds.exclusiveMinimum = typed
	case float64:
		boundary := typed
		bounds.minimum = &boundary
		bounds.exclusiveMinimum = true
	}

	switch typed := node.ExclusiveMaximum.(type) {
	case bool:
		bounds.exclusiveMaximum = typed
	case float64:
		boundary := typed
		bounds.maximum = &boundary
		bounds.exclusiveMaximum = true
	}

	return bounds
}

// formatNumber renders one boundary value without a trailing exponent or zeros.
func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// lowerBoundPhrase renders the worded lower boundary comparison.
func lowerBoundPhrase(bounds numericRange) string {
	if bounds.exclusiveMinimum {
		return "greater than " + formatNumber(*bounds.minimum)
	}

	return "greater than or equal to " + formatNumber(*bounds.minimum)
}

// upperBoundPhrase renders the worded upper boundary comparison.
func upperBoundPhrase(bounds numericRange) string {
	if bounds.exclusiveMaximum {
		return "less than " + formatNumber(*bounds.maximum)
	}

	return "less than or equal to " + formatNumber(*bounds.maximum)
}

// lowerBoundSymbol renders the symbolic lower boundary comparison.
func lowerBoundSymbol(bounds numericRange) string {
	if bounds.exclusiveMinimum {
		return "> " + formatNumber(*bounds.minimum)
	}

	return ">= " + formatNumber(*bounds.minimum)
}

// upperBoundSymbol renders the symbolic upper boundary comparison.
func upperBoundSymbol(bounds numericRange) string {
	if bounds.exclusiveMaximum {
		return "< " + formatNumber(*bounds.maximum)
	}

	return "<= " + formatNumber(*bounds.maximum)
}

// constraintBullets renders the ordered descriptive bullet set for one
// property, emitting only constraints actually present.
func constraintBullets(prop *SchemaNode, ctx renderContext) []string {
	if prop == nil {
		return nil
	}

	style := ctx.style
	out := make([]string, 0, 8)

	if bounds := normalizeRange(prop); bounds.present() {
		out = append(out, rangeBullet(bounds, style))
	}

	if prop.isType("array") {
		out = append(out, arrayItemBullets(prop, ctx)...)
	}

	if prop.Format != "" {
		out = append(out, style.Bullet(0, style.Bold("Format")+": "+style.Code(prop.Format)))
	}

	if prop.Pattern != "" {
		out = append(out, style.Bullet(0, style.Bold("Pattern")+": "+style.Code(prop.Pattern)))
	}

	if prop.MinLength != nil {
		out = append(out, style.Bullet(0, style.Bold("Minimum Length")+": "+style.Code(">= "+strconv.Itoa(*prop.MinLength))))
	}

	if prop.MaxLength != nil {
		out = append(out, style.Bullet(0, style.Bold("Maximum Length")+": "+style.Code("<= "+strconv.Itoa(*prop.MaxLength))))
	}

	if isEnumeration(prop) {
		out = append(out, style.Bullet(0, style.Bold("Allowed values")+":"))
		out = append(out, enumBullets(prop, style, 1)...)
	}

	out = append(out, additionalPropertiesBullets(prop, ctx)...)

	for _, example := range prop.Examples {
		out = append(out, style.Bullet(0, style.Bold("Example")+": "+style.Literal(example)))
	}

	return out
}

// rangeBullet renders the numeric range constraint: one combined worded
// bullet when both bounds are present, else one labeled symbolic bullet.
func rangeBullet(bounds numericRange, style *Style) string {
	switch {
	case bounds.minimum != nil && bounds.maximum != nil:
		return style.Bullet(0, "The value "+style.Must()+" be "+lowerBoundPhrase(bounds)+" and "+upperBoundPhrase(bounds)+".")
	case bounds.minimum != nil:
		return style.Bullet(0, style.Bold("Minimum")+": "+style.Code(lowerBoundSymbol(bounds)))
	default:
		return style.Bullet(0, style.Bold("Maximum")+": "+style.Code(upperBoundSymbol(bounds)))
	}
}

// arrayItemBullets renders the constraints declared on an array's items
// schema: uniqueness, item numeric range, item length range and item
// enumeration.
func arrayItemBullets(prop *SchemaNode, ctx renderContext) []string {
	items := prop.itemsSchema()
	if items == nil {
		return nil
	}

	style := ctx.style
	out := make([]string, 0, 4)

	if prop.UniqueItems {
		out = append(out, style.Bullet(0, "Each element in the array "+style.Must()+" be unique."))
	}

	// Item exclusivity is normalized independently from the property's own.
	if bounds := normalizeRange(items); bounds.present() {
		out = append(out, itemRangeBullet(bounds, style))
	}

	if bullet := itemLengthBullet(items, style); bullet != "" {
		out = append(out, bullet)
	}

	if isEnumeration(items) {
		out = append(out, style.Bullet(0, "Each element in the array "+style.Must()+" be one of the following values:"))
		out = append(out, enumBullets(items, style, 2)...)
	}

	return out
}

// itemRangeBullet renders the worded numeric range constraint for array items.
func itemRangeBullet(bounds numericRange, style *Style) string {
	switch {
	case bounds.minimum != nil && bounds.maximum != nil:
		return style.Bullet(0, "Each element in the array "+style.Must()+" be "+lowerBoundPhrase(bounds)+" and "+upperBoundPhrase(bounds)+".")
	case bounds.minimum != nil:
		return style.Bullet(0, "Each element in the array "+style.Must()+" be "+lowerBoundPhrase(bounds)+".")
	default:
		return style.Bullet(0, "Each element in the array "+style.Must()+" be "+upperBoundPhrase(bounds)+".")
	}
}

// itemLengthBullet renders the string length constraint for array items.
func itemLengthBullet(items *SchemaNode, style *Style) string {
	switch {
	case items.MinLength != nil && items.MaxLength != nil:
		return style.Bullet(0, "Each element in the array "+style.Must()+" have length between "+style.Code(strconv.Itoa(*items.MinLength))+" and "+style.Code(strconv.Itoa(*items.MaxLength))+".")
	case items.MinLength != nil:
		return style.Bullet(0, "Each element in the array "+style.Must()+" have length greater than or equal to "+style.Code(strconv.Itoa(*items.MinLength))+".")
	case items.MaxLength != nil:
		return style.Bullet(0, "Each element in the array "+style.Must()+" have length less than or equal to "+style.Code(strconv.Itoa(*items.MaxLength))+".")
	default:
		return ""
	}
}

// additionalPropertiesBullets lists the allowed sub-types when
// additionalProperties is given as a schema rather than a boolean.
func additionalPropertiesBullets(prop *SchemaNode, ctx renderContext) []string {
	if prop.AdditionalProperties == nil || prop.AdditionalProperties.Schema == nil {
		return nil
	}

	style := ctx.style
	schema := prop.AdditionalProperties.Schema

	branches := schema.AnyOf
	if len(branches) == 0 {
		branches = []*SchemaNode{schema}
	}

	out := make([]string, 0, len(branches))
	for _, branch := range branches {
		if branch == nil || branch.typeString() == "" {
			continue
		}

		text := style.TypeValue(branch.typeString())
		if branch.isType("object") {
			// Object sub-schemas link to their own type document.
			if link, ok := ctx.typeLinkFor(branch); ok {
				text = link
			}
		}

		out = append(out, style.Bullet(0, style.Bold("Type of each property")+": "+text))
	}

	return out
}
