// Package baudot converts between ASCII bytes and 5-bit ITA2 teleprinter
// code units, tracking the letters/figures shift state across calls.
//
// The tables follow historical ITA2 wiring: lower-case letters map to their
// upper-case codes, NUL/CR/LF/space are valid in either shift, and '$'
// stands in for the WHO ARE YOU combination. Decode policy is fixed:
// figures combinations with no assigned glyph decode to '&' rather than
// failing, so decoding a 5-bit stream never errors. Encoding a byte outside
// the supported alphabet fails with domain.ErrUnsupportedChar.
//
// A Codec starts each run in letters shift. It is not safe for concurrent
// use; give each logical stream its own Codec.
package baudot
