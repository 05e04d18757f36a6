package baudot

import "sturgeon/internal/domain"

// Shift code units shared by both ITA2 tables.
const (
	FIGS domain.Code = 27
	LTRS domain.Code = 31
)

const (
	invalid    = 0xFF // no ITA2 mapping
	figsFlag   = 0x80 // figures shift required
	eitherFlag = 0x40 // valid in either shift
)

// asciiToCode maps the 7-bit ASCII range to ITA2 code units. The low five
// bits are the code; figsFlag/eitherFlag carry the shift requirement.
var asciiToCode = [128]byte{
	// NUL..US: only NUL, LF and CR are on the keyboard.
	0x00: 64,
	0x07: 154, // BEL
	0x0A: 72,
	0x0D: 66,
	0x01: invalid, 0x02: invalid, 0x03: invalid, 0x04: invalid,
	0x05: invalid, 0x06: invalid, 0x08: invalid, 0x09: invalid,
	0x0B: invalid, 0x0C: invalid, 0x0E: invalid, 0x0F: invalid,
	0x10: invalid, 0x11: invalid, 0x12: invalid, 0x13: invalid,
	0x14: invalid, 0x15: invalid, 0x16: invalid, 0x17: invalid,
	0x18: invalid, 0x19: invalid, 0x1A: invalid, 0x1B: invalid,
	0x1C: invalid, 0x1D: invalid, 0x1E: invalid, 0x1F: invalid,

	' ':  68,
	'!':  invalid,
	'"':  invalid,
	'#':  invalid,
	'$':  146, // WHO ARE YOU
	'%':  invalid,
	'&':  invalid,
	'\'': 148,
	'(':  158,
	')':  137,
	'*':  invalid,
	'+':  145,
	',':  134,
	'-':  152,
	'.':  135,
	'/':  151,

	'0': 141, '1': 157, '2': 153, '3': 144, '4': 138,
	'5': 129, '6': 149, '7': 156, '8': 140, '9': 131,

	':': 142,
	';': invalid,
	'<': 158,
	'=': 143,
	'>': 137,
	'?': 147,
	'@': invalid,

	'A': 24, 'B': 19, 'C': 14, 'D': 18, 'E': 16, 'F': 22, 'G': 11,
	'H': 5, 'I': 12, 'J': 26, 'K': 30, 'L': 9, 'M': 7, 'N': 6,
	'O': 3, 'P': 13, 'Q': 29, 'R': 10, 'S': 20, 'T': 1, 'U': 28,
	'V': 15, 'W': 25, 'X': 23, 'Y': 21, 'Z': 17,

	'[':  158,
	'\\': invalid,
	']':  137,
	'^':  invalid,
	'_':  invalid,
	'`':  invalid,

	// Lower case folds to upper case.
	'a': 24, 'b': 19, 'c': 14, 'd': 18, 'e': 16, 'f': 22, 'g': 11,
	'h': 5, 'i': 12, 'j': 26, 'k': 30, 'l': 9, 'm': 7, 'n': 6,
	'o': 3, 'p': 13, 'q': 29, 'r': 10, 's': 20, 't': 1, 'u': 28,
	'v': 15, 'w': 25, 'x': 23, 'y': 21, 'z': 17,

	'{':  158,
	'|':  invalid,
	'}':  137,
	'~':  154, // BEL
	0x7F: invalid,
}

// codeToLetters maps code units to ASCII in letters shift. Entries 27 and
// 31 are the shift codes themselves and are never looked up.
var codeToLetters = [32]byte{
	0x00, 'T', '\r', 'O', ' ', 'H', 'N', 'M',
	'\n', 'L', 'R', 'G', 'I', 'P', 'C', 'V',
	'E', 'Z', 'D', 'B', 'S', 'Y', 'F', 'X',
	'A', 'W', 'J', 0, 'U', 'Q', 'K', 0,
}

// codeToFigures maps code units to ASCII in figures shift. '&' marks
// combinations with no assigned glyph.
var codeToFigures = [32]byte{
	0x00, '5', '\r', '9', ' ', '&', ',', '.',
	'\n', ')', '4', '&', '8', '0', ':', '=',
	'3', '+', '$', '?', '\'', '6', '&', '/',
	'-', '2', 0x07, 0, '7', '1', '(', 0,
}
