package baudot

import (
	"fmt"

	"sturgeon/internal/domain"
)

// Codec converts between ASCII bytes and ITA2 code units. The zero value
// starts in letters shift, which is the state every run begins in.
type Codec struct {
	figures bool
}

// NewCodec returns a codec in letters shift.
func NewCodec() *Codec { return &Codec{} }

// Encode converts one ASCII byte to code units. Characters valid in either
// shift leave the state alone; otherwise a shift code is emitted first
// whenever the required state differs from the current one.
func (c *Codec) Encode(b byte) ([]domain.Code, error) {
	e := asciiToCode[b&0x7F]
	if e == invalid {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedChar, b)
	}

	var out []domain.Code
	switch {
	case e&eitherFlag != 0:
		// No shift requirement.
	case e&figsFlag != 0:
		if !c.figures {
			out = append(out, FIGS)
			c.figures = true
		}
	default:
		if c.figures {
			out = append(out, LTRS)
			c.figures = false
		}
	}
	return append(out, domain.Code(e)&domain.CodeMask), nil
}

// EncodeAll converts a whole byte sequence, failing on the first byte
// outside the supported alphabet.
func (c *Codec) EncodeAll(data []byte) ([]domain.Code, error) {
	out := make([]domain.Code, 0, len(data))
	for i, b := range data {
		codes, err := c.Encode(b)
		if err != nil {
			return nil, fmt.Errorf("input byte %d: %w", i, err)
		}
		out = append(out, codes...)
	}
	return out, nil
}

// Decode converts one code unit. Shift codes update the state and emit
// nothing (ok is false); data codes emit one byte for the current shift.
func (c *Codec) Decode(code domain.Code) (b byte, ok bool) {
	code &= domain.CodeMask
	switch code {
	case LTRS:
		c.figures = false
		return 0, false
	case FIGS:
		c.figures = true
		return 0, false
	}
	if c.figures {
		return codeToFigures[code], true
	}
	return codeToLetters[code], true
}

// DecodeAll converts a whole code sequence to ASCII bytes.
func (c *Codec) DecodeAll(codes []domain.Code) []byte {
	out := make([]byte, 0, len(codes))
	for _, code := range codes {
		if b, ok := c.Decode(code); ok {
			out = append(out, b)
		}
	}
	return out
}
