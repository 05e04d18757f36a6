package keys

import (
	"sturgeon/internal/domain"
	"sturgeon/internal/keyfile"
)

// Service creates and inspects key files through a backing store.
type Service struct {
	files domain.FileStore
}

// New returns a key service backed by the given store.
func New(files domain.FileStore) *Service { return &Service{files: files} }

// Generate writes a fresh random key file with the standard teeth counts
// and returns its fingerprint.
func (s *Service) Generate(path string) (domain.Fingerprint, error) {
	key, err := keyfile.Generate(keyfile.DefaultTeeth)
	if err != nil {
		return "", err
	}
	data, err := keyfile.Save(key)
	if err != nil {
		return "", err
	}
	if err := s.files.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return keyfile.Fingerprint(key)
}

// Fingerprint loads and validates the key file at path and returns its
// fingerprint.
func (s *Service) Fingerprint(path string) (domain.Fingerprint, error) {
	data, err := s.files.ReadFile(path)
	if err != nil {
		return "", err
	}
	key, err := keyfile.Load(data)
	if err != nil {
		return "", err
	}
	return keyfile.Fingerprint(key)
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
