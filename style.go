// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemaref Authors
// Source: github.com/schemaref/schemaref

package schemaref

import (
	"fmt"
	"strings"
	"unicode"

	json "github.com/goccy/go-json"
)

const (
	// StyleMarkdown renders documents as CommonMark.
	StyleMarkdown StyleMode = "Markdown"
	// StyleAsciiDoctor renders documents as AsciiDoctor.
	StyleAsciiDoctor StyleMode = "AsciiDoctor"
)

// StyleMode selects the output markup dialect.
type StyleMode string

const (
	// defaultCheckmark marks required properties in the summary table.
	defaultCheckmark = "&#10003;"
	// defaultMustKeyword is the wording used in constraint sentences.
	defaultMustKeyword = "must"
)

// Style carries the output dialect configuration for one generation run.
//
// It is an explicit value threaded through every rendering call; there is no
// process-wide style state.
type Style struct {
	Mode        StyleMode
	Checkmark   string
	MustKeyword string
}

// newStyle validates the style mode and applies glyph and wording defaults.
func newStyle(mode StyleMode, checkmark, mustKeyword string) (*Style, error) {
	switch mode {
	case "", StyleMarkdown:
		mode = StyleMarkdown
	case StyleAsciiDoctor:
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownStyleMode, mode)
	}

	if strings.TrimSpace(checkmark) == "" {
		checkmark = defaultCheckmark
	}

	if strings.TrimSpace(mustKeyword) == "" {
		mustKeyword = defaultMustKeyword
	}

	return &Style{Mode: mode, Checkmark: checkmark, MustKeyword: mustKeyword}, nil
}

// Extension returns the document file extension for the selected dialect.
func (style *Style) Extension() string {
	if style.Mode == StyleAsciiDoctor {
		return ".adoc"
	}

	return ".md"
}

// Header renders one section header at the given depth.
func (style *Style) Header(depth int, text string) string {
	if depth < 1 {
		depth = 1
	}

	if style.Mode == StyleAsciiDoctor {
		return strings.Repeat("=", depth) + " " + text + "\n\n"
	}

	return strings.Repeat("#", depth) + " " + text + "\n\n"
}

// Bullet renders one list item at the given nesting depth; depth 0 is an
// unindented top-level item.
func (style *Style) Bullet(depth int, text string) string {
	if depth < 0 {
		depth = 0
	}

	if style.Mode == StyleAsciiDoctor {
		return strings.Repeat("*", depth+1) + " " + text + "\n"
	}

	return strings.Repeat("    ", depth) + "* " + text + "\n"
}

// Bold wraps text in bold markup.
func (style *Style) Bold(text string) string {
	if style.Mode == StyleAsciiDoctor {
		return "*" + text + "*"
	}

	return "**" + text + "**"
}

// Code wraps text in inline code markup.
func (style *Style) Code(text string) string {
	return "`" + escapeInline(text) + "`"
}

// TypeValue formats one type name for tables and bullets.
func (style *Style) TypeValue(name string) string {
	return style.Code(name)
}

// Link renders one link with literal display text.
func (style *Style) Link(text, target string) string {
	if style.Mode == StyleAsciiDoctor {
		return "xref:" + target + "[" + text + "]"
	}

	return "[" + text + "](" + target + ")"
}

// TypeLink renders one code-quoted link to another type's document.
func (style *Style) TypeLink(title, target string) string {
	return style.Link(style.Code(title), target)
}

// Must returns the configured constraint keyword in bold markup.
func (style *Style) Must() string {
	return style.Bold(style.MustKeyword)
}

// Literal renders one schema value as inline code, string values quoted.
func (style *Style) Literal(value any) string {
	return style.Code(jsonInline(value))
}

// EmbedInclude renders the include directive referencing a raw schema file.
func (style *Style) EmbedInclude(path string) string {
	if style.Mode == StyleAsciiDoctor {
		return "include::" + path + "[]\n"
	}

	return "{!" + path + "!}\n"
}

// PropertyTableHeader opens the properties summary table.
func (style *Style) PropertyTableHeader() string {
	if style.Mode == StyleAsciiDoctor {
		return "|===\n|   |Type|Description|Required\n\n"
	}

	return "|   |Type|Description|Required|\n|---|---|---|---|\n"
}

// PropertyTableRow renders one summary table row.
func (style *Style) PropertyTableRow(name, typeText, description, required string) string {
	if style.Mode == StyleAsciiDoctor {
		return "|" + style.Bold(name) + "\n|" + typeText + "\n|" + description + "\n|" + required + "\n\n"
	}

	return "|" + style.Bold(name) + "|" + typeText + "|" + description + "|" + required + "|\n"
}

// PropertyTableFooter closes the properties summary table.
func (style *Style) PropertyTableFooter() string {
	if style.Mode == StyleAsciiDoctor {
		return "|===\n\n"
	}

	return "\n"
}

// Paragraph renders one text block followed by a blank separator line.
func (style *Style) Paragraph(text string) string {
	return text + "\n\n"
}

// HeadingAnchor converts heading text into an anchor slug.
func HeadingAnchor(value string) string {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" {
		return ""
	}

	var out strings.Builder
	out.Grow(len(trimmed))

	lastDash := false
	for _, r := range trimmed {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			out.WriteRune(r)
			lastDash = false
		case unicode.IsSpace(r), r == '-', r == '_', r == '.':
			if lastDash || out.Len() == 0 {
				continue
			}

			out.WriteByte('-')
			lastDash = true
		}
	}

	return strings.Trim(out.String(), "-")
}

// jsonInline marshals one value as single-line JSON text for inline snippets.
func jsonInline(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}

	return string(data)
}

// sanitizeText trims and squashes repeated whitespace in plain text fields.
func sanitizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	return strings.Join(strings.Fields(text), " ")
}

// escapeInline escapes backticks in inline code segments.
func escapeInline(value string) string {
	return strings.ReplaceAll(value, "`", "\\`")
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	value = strings.TrimRight(value, "\n")
	return value + "\n"
}
