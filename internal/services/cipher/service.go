package cipher

import (
	"fmt"

	"sturgeon/internal/baudot"
	"sturgeon/internal/domain"
	"sturgeon/internal/keyfile"
	"sturgeon/internal/machine"
)

// Service runs full encrypt and decrypt passes between files. The key file
// and the whole input are validated before any output is written, and the
// output itself is written atomically, so a failing run leaves no partial
// ciphertext or plaintext behind.
type Service struct {
	files domain.FileStore
}

// New returns a cipher service backed by the given store.
func New(files domain.FileStore) *Service { return &Service{files: files} }

// Encrypt reads ASCII plaintext, converts it to ITA2 code units, enciphers
// them and writes the result as a tape file. Returns the number of code
// units written.
func (s *Service) Encrypt(inPath, keyPath, outPath string) (int, error) {
	m, err := s.loadMachine(keyPath)
	if err != nil {
		return 0, err
	}
	plain, err := s.files.ReadFile(inPath)
	if err != nil {
		return 0, err
	}
	// Full conversion up front; an unsupported byte aborts before the
	// machine steps or the output file exists.
	codes, err := baudot.NewCodec().EncodeAll(plain)
	if err != nil {
		return 0, err
	}
	out := m.EncryptAll(codes)
	if err := s.files.WriteFile(outPath, baudot.Pack(out), 0o644); err != nil {
		return 0, err
	}
	return len(out), nil
}

// Decrypt reads a tape file, deciphers it and writes the decoded ASCII
// plaintext. Returns the number of code units read.
func (s *Service) Decrypt(inPath, keyPath, outPath string) (int, error) {
	m, err := s.loadMachine(keyPath)
	if err != nil {
		return 0, err
	}
	raw, err := s.files.ReadFile(inPath)
	if err != nil {
		return 0, err
	}
	codes := baudot.Unpack(raw)
	plain := baudot.NewCodec().DecodeAll(m.DecryptAll(codes))
	if err := s.files.WriteFile(outPath, plain, 0o644); err != nil {
		return 0, err
	}
	return len(codes), nil
}

func (s *Service) loadMachine(keyPath string) (*machine.Machine, error) {
	data, err := s.files.ReadFile(keyPath)
	if err != nil {
		return nil, err
	}
	key, err := keyfile.Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", keyPath, err)
	}
	return machine.New(key)
}

// Compile-time assertion that Service implements domain.CipherService.
var _ domain.CipherService = (*Service)(nil)
