package domain

import "os"

// FileStore abstracts whole-file reads and atomic whole-file writes.
type FileStore interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, mode os.FileMode) error
}

// KeyService creates and inspects key files.
type KeyService interface {
	// Generate writes a fresh random key file to path and returns its
	// fingerprint.
	Generate(path string) (Fingerprint, error)
	// Fingerprint loads the key file at path and returns its fingerprint.
	Fingerprint(path string) (Fingerprint, error)
}

// CipherService runs full encrypt/decrypt passes between files. Both
// methods return the number of code units processed.
type CipherService interface {
	Encrypt(inPath, keyPath, outPath string) (int, error)
	Decrypt(inPath, keyPath, outPath string) (int, error)
}

// TapeService decodes Baudot tape files for display. No key is involved.
type TapeService interface {
	Read(path string) (string, error)
}
