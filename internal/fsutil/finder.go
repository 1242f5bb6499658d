// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrWrongExtension is returned by Resolve for a single file whose name does
// not end with the requested extension.
var ErrWrongExtension = errors.New("file has the wrong extension")

// FindFilesByExtension recursively searches the given root path for all files ending
// with the specified extension. It returns a slice of their full paths in
// lexical order.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		return nil, fmt.Errorf("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(d.Name()), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// Resolve takes a path and returns every file below it with the given
// extension. If the path is a file, it returns a slice containing just that
// file, provided the extension matches.
func Resolve(path, extension string) ([]string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("path not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}

	if info.IsDir() {
		return FindFilesByExtension(path, extension)
	}
	if !strings.EqualFold(filepath.Ext(path), extension) {
		return nil, fmt.Errorf("%w: %s is not a %s file", ErrWrongExtension, path, extension)
	}
	return []string{path}, nil
}
