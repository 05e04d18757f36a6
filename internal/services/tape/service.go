package tape

import (
	"sturgeon/internal/baudot"
	"sturgeon/internal/domain"
)

// Service decodes Baudot tape files for display. No key is involved.
type Service struct {
	files domain.FileStore
}

// New returns a tape service backed by the given store.
func New(files domain.FileStore) *Service { return &Service{files: files} }

// Read decodes the tape file at path to ASCII, starting in letters shift.
func (s *Service) Read(path string) (string, error) {
	raw, err := s.files.ReadFile(path)
	if err != nil {
		return "", err
	}
	codes := baudot.Unpack(raw)
	return string(baudot.NewCodec().DecodeAll(codes)), nil
}

// Compile-time assertion that Service implements domain.TapeService.
var _ domain.TapeService = (*Service)(nil)
