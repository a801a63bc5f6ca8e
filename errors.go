// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemaref Authors
// Source: github.com/schemaref/schemaref

package schemaref

import "errors"

var (
	// ErrReadSchemaFile is returned when schema file loading fails.
	ErrReadSchemaFile = errors.New("read schema file")
	// ErrDecodeSchema is returned when schema JSON or YAML decoding fails.
	ErrDecodeSchema = errors.New("decode schema")
	// ErrResolveReference is returned when a $ref target cannot be located.
	ErrResolveReference = errors.New("resolve schema reference")
	// ErrMalformedTypeGraph is returned when resolution produced no referenced schemas.
	ErrMalformedTypeGraph = errors.New("malformed type graph")
	// ErrUnknownStyleMode is returned when requested output style is not registered.
	ErrUnknownStyleMode = errors.New("unknown style mode")
	// ErrUnknownEmbedMode is returned when requested embed mode is not supported.
	ErrUnknownEmbedMode = errors.New("unknown embed mode")
	// ErrUnknownAutoLinkMode is returned when requested auto-link mode is not supported.
	ErrUnknownAutoLinkMode = errors.New("unknown auto-link mode")
	// ErrWriteDocuments is returned when one or more document writes failed.
	ErrWriteDocuments = errors.New("write documents")
	// ErrUnknownExampleMode is returned when example generation mode is not supported.
	ErrUnknownExampleMode = errors.New("unknown example mode")
	// ErrUnknownExampleFormat is returned when example generation format is not supported.
	ErrUnknownExampleFormat = errors.New("unknown example format")
	// ErrEncodeExample is returned when generated example payload encoding fails.
	ErrEncodeExample = errors.New("encode example payload")
)
