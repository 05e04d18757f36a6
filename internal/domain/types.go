package domain

// Code is one 5-bit teleprinter code unit. Only the low five bits are
// significant; bit 0 carries teleprinter bit 1 (the LSB on a code chart).
type Code byte

// CodeMask keeps the five significant bits of a Code.
const CodeMask Code = 0x1F

const (
	// NumWheels is the size of a full wheel bank.
	NumWheels = 10
	// NumSubstitution is the count of wheels feeding the XOR mask; the
	// remaining wheels gate the bit transposition.
	NumSubstitution = 5
)

// WheelSetting configures one wheel: a pin pattern (one byte per tooth,
// each 0 or 1) and the start position for the run.
type WheelSetting struct {
	Pins     []byte
	Position int
}

// Period returns the wheel's tooth count.
func (w WheelSetting) Period() int { return len(w.Pins) }

// KeySetting is the full cryptographic key: ten wheel settings in
// teleprinter-bit order, substitution wheels first, then transposition
// wheels. Treated as read-only once loaded.
type KeySetting struct {
	Wheels [NumWheels]WheelSetting
}

// Fingerprint is a short hex digest of a key setting, safe to read aloud
// when two operators compare key sheets.
type Fingerprint string
