// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemaref Authors
// Source: github.com/schemaref/schemaref

package schemaref

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// maxResolveDepth bounds schema traversal for untitled reference cycles.
const maxResolveDepth = 64

// ResolveOptions configures reference resolution for one generation run.
type ResolveOptions struct {
	// FileName is the source file of the root schema, used for graph
	// bookkeeping and schema-file links.
	FileName string
	// SearchPath is the ordered directory list used to locate external
	// schema files; defaults to the current directory.
	SearchPath []string
	// IgnorableTypes lists type titles excluded from the type graph.
	IgnorableTypes []string
	// RootTitleFallback substitutes a missing title on the resolved root
	// schema; empty leaves the root untitled and unregistered.
	RootTitleFallback string
	// Logger receives debug-level resolution traces.
	Logger *logrus.Logger
}

// Resolved is the resolver output consumed by the rendering pipeline.
type Resolved struct {
	// Schema is the root schema with every reference inlined.
	Schema *SchemaNode
	// ReferencedSchemas is the type graph of every titled schema reached
	// from the root.
	ReferencedSchemas *TypeGraph
}

// resolver walks $refs, inlines their targets and builds the type graph.
type resolver struct {
	graph        *TypeGraph
	searchers    []string
	ignorable    map[string]struct{}
	fileCache    map[string]*SchemaNode
	visited      map[string]struct{}
	rootFallback string
	log          *logrus.Logger
}

// ResolveSchema inlines every local and external reference reachable from the
// root schema and returns the root together with the referenced type graph.
func ResolveSchema(root *SchemaNode, opt ResolveOptions) (*Resolved, error) {
	searchPath := opt.SearchPath
	if len(searchPath) == 0 {
		searchPath = []string{""}
	}

	logger := opt.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	ignorable := make(map[string]struct{}, len(opt.IgnorableTypes))
	for _, title := range opt.IgnorableTypes {
		ignorable[title] = struct{}{}
	}

	walker := &resolver{
		graph:        NewTypeGraph(),
		searchers:    searchPath,
		ignorable:    ignorable,
		fileCache:    make(map[string]*SchemaNode),
		visited:      make(map[string]struct{}),
		rootFallback: opt.RootTitleFallback,
		log:          logger,
	}

	if err := walker.walk(root, "", root, opt.FileName, 0); err != nil {
		return nil, err
	}

	walker.graph.SortChildren()
	return &Resolved{Schema: root, ReferencedSchemas: walker.graph}, nil
}

// walk resolves one schema node in place and recurses into its children.
func (walker *resolver) walk(node *SchemaNode, parentTitle string, docRoot *SchemaNode, fileName string, depth int) error {
	if node == nil || depth > maxResolveDepth {
		return nil
	}

	if node.Ref != "" {
		ref := node.Ref
		target, targetRoot, targetFile, err := walker.resolveRef(ref, docRoot, fileName)
		if err != nil {
			return err
		}

		// A root-level local reference overwrites its own document; keep a
		// copy so later pointers still see the original definitions.
		if targetRoot == node {
			preserved := *node
			targetRoot = &preserved
		}

		walker.log.Debugf("resolved reference %q to %q", ref, targetFile)
		*node = *target
		docRoot = targetRoot
		fileName = targetFile
	}

	if depth == 0 && walker.rootFallback != "" && strings.TrimSpace(node.Title) == "" {
		node.Title = walker.rootFallback
	}

	title := strings.TrimSpace(node.Title)
	if title != "" {
		if _, skip := walker.ignorable[title]; !skip {
			walker.graph.Add(title, node, fileName)
			if parentTitle != "" {
				walker.graph.Link(parentTitle, title)
			}

			if _, seen := walker.visited[title]; seen {
				return nil
			}

			walker.visited[title] = struct{}{}
			parentTitle = title
		}
	}

	if node.Properties != nil {
		for pair := node.Properties.Oldest(); pair != nil; pair = pair.Next() {
			if err := walker.walk(pair.Value, parentTitle, docRoot, fileName, depth+1); err != nil {
				return err
			}
		}
	}

	if items := node.itemsSchema(); items != nil {
		if err := walker.walk(items, parentTitle, docRoot, fileName, depth+1); err != nil {
			return err
		}
	}

	for _, branches := range [][]*SchemaNode{node.AnyOf, node.AllOf, node.OneOf} {
		for _, branch := range branches {
			if err := walker.walk(branch, parentTitle, docRoot, fileName, depth+1); err != nil {
				return err
			}
		}
	}

	if node.AdditionalProperties != nil && node.AdditionalProperties.Schema != nil {
		if err := walker.walk(node.AdditionalProperties.Schema, parentTitle, docRoot, fileName, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// resolveRef locates one reference target and returns it together with its
// owning document root and file name.
func (walker *resolver) resolveRef(ref string, docRoot *SchemaNode, fileName string) (*SchemaNode, *SchemaNode, string, error) {
	if strings.HasPrefix(ref, "#") {
		target, err := localDefinition(docRoot, ref)
		if err != nil {
			return nil, nil, "", err
		}

		return target, docRoot, fileName, nil
	}

	filePart := ref
	fragment := ""
	if index := strings.Index(ref, "#"); index >= 0 {
		filePart = ref[:index]
		fragment = ref[index:]
	}

	loaded, err := walker.loadSchemaFile(filePart)
	if err != nil {
		return nil, nil, "", err
	}

	target := loaded
	if fragment != "" && fragment != "#" {
		target, err = localDefinition(loaded, fragment)
		if err != nil {
			return nil, nil, "", err
		}
	}

	if target.TypeName == "" {
		target.TypeName = referenceTypeName(filePart)
	}

	return target, loaded, filePart, nil
}

// loadSchemaFile reads and parses one external schema file through the search path.
func (walker *resolver) loadSchemaFile(file string) (*SchemaNode, error) {
	if cached, ok := walker.fileCache[file]; ok {
		return cached, nil
	}

	var firstErr error
	for _, dir := range walker.searchers {
		data, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}

			continue
		}

		node, err := ParseSchemaBytes(data)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrResolveReference, file, err)
		}

		walker.fileCache[file] = node
		return node, nil
	}

	if firstErr == nil {
		firstErr = os.ErrNotExist
	}

	return nil, fmt.Errorf("%w %q: %w", ErrResolveReference, file, firstErr)
}

// localDefinition resolves a local JSON pointer into $defs or definitions.
func localDefinition(docRoot *SchemaNode, ref string) (*SchemaNode, error) {
	name := ""
	for _, prefix := range []string{"#/$defs/", "#/definitions/"} {
		if strings.HasPrefix(ref, prefix) {
			name = strings.TrimPrefix(ref, prefix)
			break
		}
	}

	if name == "" || strings.Contains(name, "/") {
		return nil, fmt.Errorf("%w: unsupported pointer %q", ErrResolveReference, ref)
	}

	definitions := docRoot.definitionsMap()
	target, ok := definitions[name]
	if !ok || target == nil {
		return nil, fmt.Errorf("%w: missing definition %q", ErrResolveReference, name)
	}

	return target, nil
}

// referenceTypeName derives the inlined typeName from a referenced file name.
func referenceTypeName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
