package baudot

import "sturgeon/internal/domain"

// Tape framing: one code unit per byte, low five bits significant. This is
// the on-disk form both cipher output and readtape input use.

// Pack serialises code units for a tape file.
func Pack(codes []domain.Code) []byte {
	out := make([]byte, len(codes))
	for i, c := range codes {
		out[i] = byte(c & domain.CodeMask)
	}
	return out
}

// Unpack reads code units from a tape file, masking each byte to five bits.
func Unpack(data []byte) []domain.Code {
	out := make([]domain.Code, len(data))
	for i, b := range data {
		out[i] = domain.Code(b) & domain.CodeMask
	}
	return out
}
