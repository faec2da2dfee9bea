package excelcli

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ResolveFiles expands a glob pattern into a sorted list of regular files.
// Besides *, ? and [...], the pattern may use {a,b} alternatives and **
// to match any number of directories. Paths listed in exclude are dropped
// from the result.
func ResolveFiles(pattern string, exclude ...string) ([]string, error) {
	if !doublestar.ValidatePathPattern(filepath.ToSlash(pattern)) {
		return nil, fmt.Errorf("%w: %q", ErrPattern, pattern)
	}
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrPattern, pattern, err)
	}

	skip := make(map[string]bool, len(exclude))
	for _, p := range exclude {
		if abs, err := filepath.Abs(p); err == nil {
			skip[abs] = true
		}
	}

	files := matches[:0]
	for _, m := range matches {
		if abs, err := filepath.Abs(m); err == nil && skip[abs] {
			continue
		}
		files = append(files, m)
	}
	sort.Strings(files)
	return files, nil
}
