// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemaref Authors
// Source: github.com/schemaref/schemaref

package schemaref

// isEnumeration reports whether a schema fragment declares allowed values,
// either as a direct enum array or as an anyOf list of single-value branches.
func isEnumeration(node *SchemaNode) bool {
	if node == nil {
		return false
	}

	if len(node.Enum) > 0 {
		return true
	}

	for _, branch := range node.AnyOf {
		if _, ok := branch.constValue(); ok {
			return true
		}

		if len(branch.Enum) == 1 {
			return true
		}
	}

	return false
}

// enumBullets renders one bullet per allowed value at the given indentation
// depth, in declaration order, or nothing when the fragment is not an
// enumeration.
//
// Display names are zipped positionally with values; mismatched lengths are
// left as-is, so values beyond the names array render without a name.
func enumBullets(node *SchemaNode, style *Style, depth int) []string {
	if node == nil {
		return nil
	}

	if len(node.Enum) > 0 {
		out := make([]string, 0, len(node.Enum))
		for index, value := range node.Enum {
			text := style.Literal(value)
			if index < len(node.EnumNames) && node.EnumNames[index] != "" {
				text += " " + node.EnumNames[index]
			}

			out = append(out, style.Bullet(depth, text))
		}

		return out
	}

	out := make([]string, 0, len(node.AnyOf))
	for _, branch := range node.AnyOf {
		value, ok := branch.constValue()
		if !ok {
			if len(branch.Enum) != 1 {
				// Branch carries only a type marker; skip it.
				continue
			}

			value = branch.Enum[0]
		}

		text := style.Literal(value)
		if branch.Description != "" {
			text += " " + sanitizeText(branch.Description)
		}

		out = append(out, style.Bullet(depth, text))
	}

	return out
}
