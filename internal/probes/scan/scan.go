// Package scan provides the shared directory walker used by detection
// probes. Walks are read-only and skip well-known bulk directories
// (dependency caches, build output, VCS metadata) both to bound traversal
// cost and to avoid false positives from vendored code.
package scan

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// skipDirs are never descended into.
var skipDirs = map[string]struct{}{
	".git":         {},
	".svn":         {},
	".hg":          {},
	"node_modules": {},
	"target":       {},
	"build":        {},
	"dist":         {},
	"__pycache__":  {},
	"venv":         {},
	".venv":        {},
	"env":          {},
	".idea":        {},
	".vscode":      {},
}

// ErrStop is returned by walk callbacks to end the traversal early.
var ErrStop = errors.New("stop walk")

// Walk traverses root depth-first, skipping bulk directories, and calls fn
// for every regular file with its path relative to root. fn may return
// ErrStop to end the walk without error.
func Walk(root string, fn func(rel string, d fs.DirEntry) error) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if _, skip := skipDirs[d.Name()]; skip && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		return fn(filepath.ToSlash(rel), d)
	})
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}

// FindFirst returns the relative path of the first file under root whose
// relative path matches any of the glob patterns. Patterns use doublestar
// syntax, so "**/*.jsp" matches at any depth.
func FindFirst(root string, patterns ...string) (string, bool) {
	var found string
	_ = Walk(root, func(rel string, _ fs.DirEntry) error {
		for _, p := range patterns {
			if ok, _ := doublestar.Match(p, rel); ok {
				found = rel
				return ErrStop
			}
		}
		return nil
	})
	return found, found != ""
}

// Count returns how many files under root match any pattern, along with up
// to keep of the first matching relative paths. A limit of 0 counts all
// matches; a positive limit stops the walk once reached.
func Count(root string, limit, keep int, patterns ...string) (int, []string) {
	var (
		n     int
		first []string
	)
	_ = Walk(root, func(rel string, _ fs.DirEntry) error {
		for _, p := range patterns {
			ok, _ := doublestar.Match(p, rel)
			if !ok {
				continue
			}
			n++
			if len(first) < keep {
				first = append(first, rel)
			}
			if limit > 0 && n >= limit {
				return ErrStop
			}
			break
		}
		return nil
	})
	return n, first
}
