// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemaref Authors
// Source: github.com/schemaref/schemaref

/*
Package schemaref renders per-type reference documentation from JSON Schema
type graphs.

The package resolves $refs across draft-03, draft-04, draft-07 and 2020-12
dialect schemas, builds a type graph of every titled schema reached from the
root, and emits one document per referenced type with its properties,
constraints, enumerations and cross-references. Output dialects are Markdown
(default) and AsciiDoctor.

Generate documents from schema bytes:

	schemaBytes, err := os.ReadFile("root.schema.json")
	if err != nil {
		return err
	}

	docs, err := schemaref.Generate(schemaBytes, schemaref.Options{
		FileName:   "root.schema.json",
		SearchPath: []string{"schemas"},
		WriteTOC:   true,
	})
	if err != nil {
		return err
	}

	for _, doc := range docs {
		fmt.Println(doc.FileName)
	}

Write documents with bounded concurrency and aggregated failures:

	if err := schemaref.WriteDocuments("out", docs, 4); err != nil {
		return err
	}

Detect JSON Schema dialect support:

	info := schemaref.DetectDraft("https://json-schema.org/draft/2020-12/schema")
	fmt.Printf("dialect=%s recognized=%v\n", info.Canonical, info.Recognized)

Generate an example payload from the schema:

	payload, err := schemaref.GenerateExample(schemaBytes,
		schemaref.ExampleModeRequired, schemaref.ExampleFormatYAML,
		schemaref.ResolveOptions{FileName: "root.schema.json"})
	if err != nil {
		return err
	}

	fmt.Println(string(payload))
*/
package schemaref
