// Package scanner lists the video files of a single directory.
package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotDirectory is returned by Scan when the target exists but is a file.
var ErrNotDirectory = errors.New("not a directory")

// Filter matches file names against a set of video extensions.
type Filter struct {
	exts map[string]struct{}
}

// NewFilter builds a Filter. Extensions are compared case-insensitively and
// may be given with or without the leading dot.
func NewFilter(exts []string) Filter {
	f := Filter{exts: make(map[string]struct{}, len(exts))}
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		f.exts[ext] = struct{}{}
	}
	return f
}

// Match reports whether name carries one of the filter's extensions.
// Hidden files (leading dot) never match.
func (f Filter) Match(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	_, ok := f.exts[strings.ToLower(filepath.Ext(base))]
	return ok
}

// Scan returns the full paths of matching regular entries of dir, sorted by
// name. Subdirectories are not descended into. Errors are returned as the
// filesystem reports them; callers add the directory context.
func (f Filter) Scan(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, ErrNotDirectory
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !f.Match(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}

	return files, nil
}
