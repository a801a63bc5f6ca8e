// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemaref Authors
// Source: github.com/schemaref/schemaref

package schemaref

import (
	"fmt"
	"strings"
)

const (
	// AutoLinkOff disables description auto-linking entirely.
	AutoLinkOff AutoLinkMode = "off"
	// AutoLinkAggressive links every literal occurrence of a known type title.
	AutoLinkAggressive AutoLinkMode = "aggressive"
	// AutoLinkCodeQuoteOnly links only code-quoted occurrences of known titles.
	AutoLinkCodeQuoteOnly AutoLinkMode = "codeQuoteOnly"
)

// AutoLinkMode selects how free-text descriptions are linked to known types.
type AutoLinkMode string

// normalizeAutoLinkMode validates the auto-link mode and applies the default.
func normalizeAutoLinkMode(mode AutoLinkMode) (AutoLinkMode, error) {
	switch mode {
	case "":
		return AutoLinkAggressive, nil
	case AutoLinkOff, AutoLinkAggressive, AutoLinkCodeQuoteOnly:
		return mode, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownAutoLinkMode, mode)
	}
}

// autoLink rewrites every occurrence of a known type title in free text into
// a link to that type's document.
//
// Titles arrive sorted longest-name-first so a maximal title wins over any of
// its substrings. Matching is plain substring replacement and the replacement
// output is not re-scanned.
func autoLink(text string, descendingTitles []string, graph *TypeGraph, style *Style, mode AutoLinkMode) string {
	if mode == AutoLinkOff || text == "" {
		return text
	}

	for _, title := range descendingTitles {
		target := graph.DocumentFile(title, style.Extension())
		if mode == AutoLinkCodeQuoteOnly {
			quoted := "`" + title + "`"
			text = strings.ReplaceAll(text, quoted, style.Link(quoted, target))
			continue
		}

		text = strings.ReplaceAll(text, title, style.Link(title, target))
	}

	return text
}
