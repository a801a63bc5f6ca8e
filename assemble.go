// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemaref Authors
// Source: github.com/schemaref/schemaref

package schemaref

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	// EmbedNone fully expands every type into its own document.
	EmbedNone EmbedMode = "none"
	// EmbedWriteIncludeStatements emits per-type stub documents holding only
	// an include directive referencing the raw schema file.
	EmbedWriteIncludeStatements EmbedMode = "writeIncludeStatements"
	// EmbedReferenceIncludeDocument points schema-file links at generated
	// include documents instead of the raw schema files.
	EmbedReferenceIncludeDocument EmbedMode = "referenceIncludeDocument"
)

// EmbedMode selects how generated documents reference raw schema files.
type EmbedMode string

const (
	// unrecognizedSchemaWarning prefixes output when the $schema dialect is
	// not recognized and warnings are not suppressed.
	unrecognizedSchemaWarning = "> WETZEL_WARNING: Unrecognized JSON Schema.\n\n"
	// titleMissingWarning substitutes a missing title wherever one is
	// required, when warnings are not suppressed.
	titleMissingWarning = "WETZEL_WARNING: title not defined"
)

// normalizeEmbedMode validates the embed mode and applies the default.
func normalizeEmbedMode(mode EmbedMode) (EmbedMode, error) {
	switch mode {
	case "":
		return EmbedNone, nil
	case EmbedNone, EmbedWriteIncludeStatements, EmbedReferenceIncludeDocument:
		return mode, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownEmbedMode, mode)
	}
}

// Options configures one documentation generation run.
type Options struct {
	// FileName is the source file name of the root schema.
	FileName string
	// SearchPath is the ordered directory list for external references.
	SearchPath []string
	// StyleMode selects the output dialect; Markdown when empty.
	StyleMode StyleMode
	// Checkmark overrides the required-property marker glyph.
	Checkmark string
	// MustKeyword overrides the "must" wording in constraint sentences.
	MustKeyword string
	// WriteTOC prepends a table of contents to the root type's document.
	WriteTOC bool
	// HeaderLevel is the starting heading depth; 1 when unset.
	HeaderLevel int
	// SuppressWarnings disables the in-document warning literals.
	SuppressWarnings bool
	// SchemaRelativeBasePath prefixes links back to source schema files.
	SchemaRelativeBasePath string
	// AutoLink selects the description auto-linking mode.
	AutoLink AutoLinkMode
	// EmbedMode selects raw schema embedding behavior.
	EmbedMode EmbedMode
	// IgnorableTypes lists type titles excluded from the graph and output.
	IgnorableTypes []string
	// Debug enables debug-level resolution logging.
	Debug bool
	// Logger receives debug traces; the logrus standard logger when nil.
	Logger *logrus.Logger
}

// Document is one generated documentation page.
type Document struct {
	// FileName is the output file name including the style extension.
	FileName string
	// Body is the rendered document text.
	Body string
}

// renderContext carries the per-run rendering state threaded explicitly
// through every rendering call.
type renderContext struct {
	style            *Style
	graph            *TypeGraph
	descendingTitles []string
	autoLinkMode     AutoLinkMode
	embedMode        EmbedMode
	headerLevel      int
	basePath         string
	suppressWarnings bool
}

// linkText applies description auto-linking with the run configuration.
func (ctx renderContext) linkText(text string) string {
	return autoLink(text, ctx.descendingTitles, ctx.graph, ctx.style, ctx.autoLinkMode)
}

// typeLinkFor returns a link to the node's own type document when its title
// is registered in the type graph.
func (ctx renderContext) typeLinkFor(node *SchemaNode) (string, bool) {
	if node == nil || node.Title == "" {
		return "", false
	}

	if _, ok := ctx.graph.Node(node.Title); !ok {
		return "", false
	}

	return ctx.style.TypeLink(node.Title, ctx.graph.DocumentFile(node.Title, ctx.style.Extension())), true
}

// Generate renders one document per referenced type from schema bytes.
func Generate(schemaBytes []byte, opt Options) ([]Document, error) {
	style, err := newStyle(opt.StyleMode, opt.Checkmark, opt.MustKeyword)
	if err != nil {
		return nil, err
	}

	autoLinkMode, err := normalizeAutoLinkMode(opt.AutoLink)
	if err != nil {
		return nil, err
	}

	embedMode, err := normalizeEmbedMode(opt.EmbedMode)
	if err != nil {
		return nil, err
	}

	root, err := ParseSchemaBytes(schemaBytes)
	if err != nil {
		return nil, err
	}

	draft := DetectDraft(root.Schema)

	rootFallback := titleMissingWarning
	if opt.SuppressWarnings {
		rootFallback = "Root"
	}

	logger := opt.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	if opt.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	resolved, err := ResolveSchema(root, ResolveOptions{
		FileName:          opt.FileName,
		SearchPath:        opt.SearchPath,
		IgnorableTypes:    opt.IgnorableTypes,
		RootTitleFallback: rootFallback,
		Logger:            logger,
	})
	if err != nil {
		return nil, err
	}

	graph := resolved.ReferencedSchemas
	if graph == nil || graph.Len() == 0 {
		return nil, fmt.Errorf("%w: no referenced schemas", ErrMalformedTypeGraph)
	}

	headerLevel := opt.HeaderLevel
	if headerLevel < 1 {
		headerLevel = 1
	}

	ctx := renderContext{
		style:            style,
		graph:            graph,
		descendingTitles: graph.DescendingTitles(),
		autoLinkMode:     autoLinkMode,
		embedMode:        embedMode,
		headerLevel:      headerLevel,
		basePath:         opt.SchemaRelativeBasePath,
		suppressWarnings: opt.SuppressWarnings,
	}

	rootTitle := resolved.Schema.Title
	docs := make([]Document, 0, graph.Len())
	for _, title := range graph.AscendingTitles() {
		node, ok := graph.Node(title)
		if !ok {
			continue
		}

		body := assembleTypeDocument(title, node, ctx)
		if body == "" {
			continue
		}

		if title == rootTitle {
			prefix := ""
			if !draft.Recognized && !opt.SuppressWarnings {
				prefix += unrecognizedSchemaWarning
			}

			if opt.WriteTOC {
				prefix += buildTableOfContents(rootTitle, ctx)
			}

			body = prefix + body
		}

		docs = append(docs, Document{
			FileName: graph.DocumentFile(title, style.Extension()),
			Body:     ensureTrailingNewline(body),
		})

		if embedMode == EmbedReferenceIncludeDocument && node.FileName != "" {
			docs = append(docs, Document{
				FileName: includeDocumentFile(graph, title, style),
				Body:     ensureTrailingNewline(style.EmbedInclude(ctx.basePath + node.FileName)),
			})
		}
	}

	return docs, nil
}

// assembleTypeDocument renders one type's full document body, or empty text
// when the type has nothing to document.
func assembleTypeDocument(title string, node *GraphNode, ctx renderContext) string {
	style := ctx.style
	var out strings.Builder
	out.WriteString(style.Header(ctx.headerLevel, title))

	if ctx.embedMode == EmbedWriteIncludeStatements {
		if node.FileName == "" {
			return ""
		}

		out.WriteString(style.EmbedInclude(ctx.basePath + node.FileName))
		return out.String()
	}

	schema := node.Schema
	sections := 0

	if description := sanitizeText(schema.Description); description != "" {
		out.WriteString(style.Paragraph(ctx.linkText(description)))
		sections++
	}

	if detailed := sanitizeText(schema.DetailedDescription); detailed != "" {
		out.WriteString(style.Paragraph(ctx.linkText(detailed)))
		sections++
	}

	required := schema.requiredNames()
	hasProperties := schema.Properties != nil && schema.Properties.Len() > 0

	if hasProperties {
		out.WriteString(style.Paragraph(style.Bold("Properties")))
		out.WriteString(style.PropertyTableHeader())
		for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
			descriptor := extractDescriptor(pair.Key, pair.Value, required, ctx)
			requiredCell := descriptor.Required
			if requiredCell == "Yes" {
				requiredCell = style.Checkmark + " Yes"
			}

			out.WriteString(style.PropertyTableRow(pair.Key, descriptor.FormattedType, descriptor.Description, requiredCell))
		}

		out.WriteString(style.PropertyTableFooter())
		sections++
	}

	if schema.isType("object") || hasProperties {
		out.WriteString(style.Paragraph(additionalPropertiesStatement(schema)))
	}

	if ctx.basePath != "" && node.FileName != "" {
		out.WriteString(style.Bullet(0, style.Bold("JSON schema")+": "+ctx.schemaFileLink(title, node)))
		out.WriteString("\n")
	}

	if hasProperties {
		docID := ctx.graph.DocumentID(title)
		for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
			out.WriteString(assemblePropertyDetail(docID, pair.Key, pair.Value, required, ctx))
		}

		sections++
	}

	if len(schema.Examples) > 0 {
		out.WriteString(style.Header(ctx.headerLevel+1, "Examples"))
		for _, example := range schema.Examples {
			out.WriteString(style.Bullet(0, style.Literal(example)))
		}

		out.WriteString("\n")
		sections++
	}

	if sections == 0 {
		return ""
	}

	return out.String()
}

// assemblePropertyDetail renders one property's detail subsection.
func assemblePropertyDetail(docID, name string, prop *SchemaNode, parentRequired []string, ctx renderContext) string {
	style := ctx.style
	descriptor := extractDescriptor(name, prop, parentRequired, ctx)

	var out strings.Builder
	out.WriteString(style.Header(ctx.headerLevel+1, docID+"."+name))

	if descriptor.Description != "" {
		out.WriteString(style.Paragraph(descriptor.Description))
	}

	out.WriteString(style.Bullet(0, style.Bold("Type")+": "+descriptor.FormattedType))
	out.WriteString(style.Bullet(0, style.Bold("Required")+": "+descriptor.Required))
	for _, bullet := range constraintBullets(prop, ctx) {
		out.WriteString(bullet)
	}

	out.WriteString("\n")
	return out.String()
}

// additionalPropertiesStatement renders the allowed/not allowed statement.
func additionalPropertiesStatement(schema *SchemaNode) string {
	if schema.AdditionalProperties != nil && schema.AdditionalProperties.Allowed != nil && !*schema.AdditionalProperties.Allowed {
		return "Additional properties are not allowed."
	}

	return "Additional properties are allowed."
}

// schemaFileLink renders the link back to a type's source schema file.
func (ctx renderContext) schemaFileLink(title string, node *GraphNode) string {
	if ctx.embedMode == EmbedReferenceIncludeDocument {
		target := includeDocumentFile(ctx.graph, title, ctx.style)
		return ctx.style.Link(node.FileName, target)
	}

	return ctx.style.Link(node.FileName, ctx.basePath+node.FileName)
}

// includeDocumentFile names the generated include document for one type.
func includeDocumentFile(graph *TypeGraph, title string, style *Style) string {
	return graph.DocumentID(title) + ".schema" + style.Extension()
}
