package store

import (
	"os"
	"path/filepath"

	"sturgeon/internal/domain"
)

// FileStore reads and writes whole files on the local filesystem.
type FileStore struct{}

func NewFileStore() *FileStore { return &FileStore{} }

// ReadFile returns the full contents of path.
func (s *FileStore) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes bytes via a temp file, then atomically replaces the
// target.
func (s *FileStore) WriteFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// Compile-time assertion that FileStore implements domain.FileStore.
var _ domain.FileStore = (*FileStore)(nil)
