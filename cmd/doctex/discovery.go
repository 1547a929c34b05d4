package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Sentinel errors for file discovery.
var ErrInvalidExtension = errors.New("file must have .html extension")

// discoverFiles finds all HTML files to process. A root pointing at a
// single file is accepted as-is after an extension check. Traversal order
// is filesystem-dependent; files are independent so no order is required.
// A walk error aborts discovery: there is no per-file isolation.
func discoverFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if filepath.Ext(root) != ".html" {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(root))
		}
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || filepath.Ext(path) != ".html" {
			return nil
		}
		files = append(files, path)
		return nil
	})

	return files, err
}
