// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemaref Authors
// Source: github.com/schemaref/schemaref

package schemaref

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// defaultWriteConcurrency bounds parallel document writes.
const defaultWriteConcurrency = 4

// WriteDocuments stores every generated document under the output directory.
//
// Writes run with bounded concurrency and every failure is collected, so the
// returned error reports each failing file instead of only the first.
func WriteDocuments(dir string, docs []Document, concurrency int) error {
	if concurrency <= 0 {
		concurrency = defaultWriteConcurrency
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteDocuments, err)
	}

	var mu sync.Mutex
	var failures []error

	group := new(errgroup.Group)
	group.SetLimit(concurrency)

	for _, doc := range docs {
		doc := doc
		group.Go(func() error {
			path := filepath.Join(dir, doc.FileName)
			if err := os.WriteFile(path, []byte(doc.Body), 0o600); err != nil {
				mu.Lock()
				failures = append(failures, fmt.Errorf("write %q: %w", path, err))
				mu.Unlock()
			}

			return nil
		})
	}

	_ = group.Wait()
	if len(failures) == 0 {
		return nil
	}

	sort.Slice(failures, func(left, right int) bool {
		return failures[left].Error() < failures[right].Error()
	})

	return fmt.Errorf("%w: %w", ErrWriteDocuments, errors.Join(failures...))
}
