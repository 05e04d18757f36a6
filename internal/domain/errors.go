package domain

import "errors"

var (
	// ErrConfig reports an invalid wheel configuration (empty pin pattern,
	// pin value other than 0/1, start position outside the wheel).
	ErrConfig = errors.New("invalid wheel configuration")

	// ErrFormat reports a malformed key file. The run aborts; the user can
	// fix the file and retry.
	ErrFormat = errors.New("malformed key file")

	// ErrUnsupportedChar reports an input byte with no ITA2 representation.
	ErrUnsupportedChar = errors.New("character not representable in ITA2")
)
