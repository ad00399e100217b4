package bmp

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/zanicar/shadowbmp/shadowerr"
)

// Store is the abstract bitmap loader/storer spec.md section 1 names as
// a replaceable external collaborator. The core packages (shadow,
// stego, pipeline) depend only on this interface, never on a concrete
// filesystem.
type Store interface {
	Load(path string) (*Bitmap, error)
	Save(path string, b *Bitmap) error
}

// FileStore is a Store backed by an afero.Fs, so production code can use
// the real OS filesystem (afero.NewOsFs()) while tests use an in-memory
// one (afero.NewMemMapFs()) without touching disk.
type FileStore struct {
	Fs afero.Fs
}

// NewFileStore returns a FileStore backed by fs.
func NewFileStore(fs afero.Fs) *FileStore {
	return &FileStore{Fs: fs}
}

// Load reads and decodes the BMP file at path.
func (s *FileStore) Load(path string) (*Bitmap, error) {
	raw, err := afero.ReadFile(s.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", shadowerr.ErrIO, path, err)
	}
	b, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return b, nil
}

// Save encodes and writes b to path, creating or truncating the file.
func (s *FileStore) Save(path string, b *Bitmap) error {
	raw := Encode(b)
	if err := afero.WriteFile(s.Fs, path, raw, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", shadowerr.ErrIO, path, err)
	}
	return nil
}
