// Package filesearch lists workspace files for the open-file modal,
// honoring the root .gitignore.
package filesearch

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// walkCap bounds how many matches a single walk collects before giving up,
// so a giant workspace cannot stall the modal.
const walkCap = 10000

// Searcher walks a root directory for file names. Results are returned
// relative to the root.
type Searcher struct {
	root   string
	ignore *IgnoreList
}

// New returns a searcher rooted at dir. A missing or unreadable .gitignore
// just means nothing is filtered.
func New(dir string) (*Searcher, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	ignore, err := LoadIgnoreList(filepath.Join(root, ".gitignore"))
	if err != nil {
		ignore = &IgnoreList{}
	}
	return &Searcher{root: root, ignore: ignore}, nil
}

// Root returns the absolute search root.
func (s *Searcher) Root() string { return s.root }

// Search returns up to max relative paths containing query,
// case-insensitively. An empty query matches every file. Results are
// sorted shallow-first, then lexicographically, so files near the root
// surface on top of the modal.
func (s *Searcher) Search(ctx context.Context, query string, max int) ([]string, error) {
	query = strings.ToLower(query)

	var results []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil || rel == "." {
			return nil
		}
		if d.IsDir() {
			if d.Name() == ".git" || s.ignore.Matches(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if s.ignore.Matches(rel, false) {
			return nil
		}
		if query != "" && !strings.Contains(strings.ToLower(rel), query) {
			return nil
		}
		results = append(results, rel)
		if len(results) >= walkCap {
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil && err != filepath.SkipAll {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		di := strings.Count(results[i], string(filepath.Separator))
		dj := strings.Count(results[j], string(filepath.Separator))
		if di != dj {
			return di < dj
		}
		return results[i] < results[j]
	})
	if max > 0 && len(results) > max {
		results = results[:max]
	}
	return results, nil
}
