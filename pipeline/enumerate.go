package pipeline

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/zanicar/shadowbmp/bmp"
)

// CarrierSource is the abstract carrier/shadow directory iterator
// spec.md section 1 names as a replaceable external collaborator: the
// core depends only on this interface, never on a concrete directory
// walker.
type CarrierSource interface {
	// Enumerate lists up to limit regular files in dir (all of them when
	// limit is 0), in a stable order, whose decoded contents satisfy
	// validator(b, k, secretSize).
	// Files that fail to load or decode as a bitmap are skipped rather
	// than treated as fatal, since a directory of candidate carriers or
	// shadows may contain unrelated files.
	Enumerate(dir string, k, secretSize, limit int, validator Validator, store bmp.Store) ([]string, error)
}

// AferoSource is a CarrierSource backed by an afero.Fs, so production
// code can scan the real filesystem while tests scan an in-memory one.
type AferoSource struct {
	Fs afero.Fs
}

// NewAferoSource returns a CarrierSource backed by fs.
func NewAferoSource(fs afero.Fs) *AferoSource {
	return &AferoSource{Fs: fs}
}

// Enumerate implements CarrierSource.
func (s *AferoSource) Enumerate(dir string, k, secretSize, limit int, validator Validator, store bmp.Store) ([]string, error) {
	entries, err := afero.ReadDir(s.Fs, dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		b, err := store.Load(path)
		if err != nil {
			continue
		}
		if !validator(b, k, secretSize) {
			continue
		}
		matches = append(matches, path)
		if limit > 0 && len(matches) == limit {
			break
		}
	}
	return matches, nil
}
