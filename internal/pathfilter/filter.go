// Package pathfilter provides glob-based path filtering using doublestar patterns.
package pathfilter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter holds the include and exclude patterns applied to finding locations
type Filter struct {
	include []string
	exclude []string
}

// New creates a new Filter with the given include and exclude patterns
func New(include, exclude []string) *Filter {
	return &Filter{
		include: include,
		exclude: exclude,
	}
}

// DefaultFilter returns a filter that keeps every path
func DefaultFilter() *Filter {
	return New([]string{"**"}, nil)
}

// Validate checks that every pattern is well formed
func (f *Filter) Validate() error {
	for _, pattern := range f.include {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid include pattern %q", pattern)
		}
	}
	for _, pattern := range f.exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return nil
}

// MatchFile checks if a single file path matches the filter criteria.
// Absolute paths also match a pattern when any trailing part of them
// does, so "vendor/**" applies to "/repo/vendor/x.go".
func (f *Filter) MatchFile(path string) (bool, error) {
	candidates := suffixes(Normalize(path))

	included, err := matchAny(f.include, candidates)
	if err != nil || !included {
		return false, err
	}

	excluded, err := matchAny(f.exclude, candidates)
	if err != nil {
		return false, err
	}
	return !excluded, nil
}

func matchAny(patterns, paths []string) (bool, error) {
	for _, pattern := range patterns {
		for _, path := range paths {
			match, err := doublestar.Match(pattern, path)
			if err != nil {
				return false, err
			}
			if match {
				return true, nil
			}
		}
	}
	return false, nil
}

// suffixes returns path and, for absolute paths, every part of it that
// starts after a slash.
func suffixes(path string) []string {
	out := []string{path}
	if !isAbs(path) {
		return out
	}
	for i := 0; i < len(path); i++ {
		if path[i] == '/' && i+1 < len(path) {
			out = append(out, path[i+1:])
		}
	}
	return out
}

// isAbs reports whether a normalized path is rooted, either "/x" or "C:/x".
func isAbs(path string) bool {
	if strings.HasPrefix(path, "/") {
		return true
	}
	return len(path) >= 3 && path[1] == ':' && path[2] == '/'
}

// Allows reports whether an artifact URI passes the filter. Malformed
// patterns never match; call Validate first to surface them.
func (f *Filter) Allows(uri string) bool {
	ok, err := f.MatchFile(uri)
	return err == nil && ok
}

// Normalize turns an artifact URI into a slash-separated path suitable for
// pattern matching.
func Normalize(uri string) string {
	p := strings.TrimPrefix(uri, "file://")
	p = strings.ReplaceAll(p, "\\", "/")
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	return p
}

// Glob expands an input pattern into the sorted list of matching files.
// An existing path is returned as is, even when it contains glob
// metacharacters.
func Glob(pattern string) ([]string, error) {
	if info, err := os.Stat(pattern); err == nil && !info.IsDir() {
		return []string{pattern}, nil
	}

	if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
		return nil, fmt.Errorf("invalid input pattern %q", pattern)
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("expanding %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match %q", pattern)
	}

	sort.Strings(matches)
	return matches, nil
}
