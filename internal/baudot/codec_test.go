package baudot_test

import (
	"bytes"
	"errors"
	"testing"

	"sturgeon/internal/baudot"
	"sturgeon/internal/domain"
)

func TestEncode_LettersNeedNoInitialShift(t *testing.T) {
	c := baudot.NewCodec()
	codes, err := c.EncodeAll([]byte("HELLO"))
	if err != nil {
		t.Fatalf("EncodeAll: %v", err)
	}
	want := []domain.Code{5, 16, 9, 9, 3}
	if len(codes) != len(want) {
		t.Fatalf("want %d codes, got %d: %v", len(want), len(codes), codes)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("code %d: want %d, got %d", i, want[i], codes[i])
		}
	}
}

func TestEncode_ShiftInsertion(t *testing.T) {
	c := baudot.NewCodec()
	codes, err := c.EncodeAll([]byte("A1B"))
	if err != nil {
		t.Fatalf("EncodeAll: %v", err)
	}
	want := []domain.Code{24, baudot.FIGS, 29, baudot.LTRS, 19}
	if len(codes) != len(want) {
		t.Fatalf("want %v, got %v", want, codes)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("code %d: want %d, got %d", i, want[i], codes[i])
		}
	}
}

func TestEncode_LeadingFigure(t *testing.T) {
	c := baudot.NewCodec()
	codes, err := c.EncodeAll([]byte("1"))
	if err != nil {
		t.Fatalf("EncodeAll: %v", err)
	}
	if len(codes) != 2 || codes[0] != baudot.FIGS || codes[1] != 29 {
		t.Fatalf("want [FIGS 29], got %v", codes)
	}
}

func TestEncode_EitherShiftKeepsState(t *testing.T) {
	c := baudot.NewCodec()
	// Space is valid in either shift: "1 2" must not drop back to letters.
	codes, err := c.EncodeAll([]byte("1 2"))
	if err != nil {
		t.Fatalf("EncodeAll: %v", err)
	}
	want := []domain.Code{baudot.FIGS, 29, 4, 25}
	if len(codes) != len(want) {
		t.Fatalf("want %v, got %v", want, codes)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("code %d: want %d, got %d", i, want[i], codes[i])
		}
	}
}

func TestEncode_UnsupportedByte(t *testing.T) {
	c := baudot.NewCodec()
	if _, err := c.Encode('%'); !errors.Is(err, domain.ErrUnsupportedChar) {
		t.Fatalf("want ErrUnsupportedChar, got %v", err)
	}
	if _, err := c.EncodeAll([]byte("OK%")); !errors.Is(err, domain.ErrUnsupportedChar) {
		t.Fatalf("EncodeAll: want ErrUnsupportedChar, got %v", err)
	}
}

func TestEncode_LowerCaseFolds(t *testing.T) {
	enc := baudot.NewCodec()
	codes, err := enc.EncodeAll([]byte("attack at dawn"))
	if err != nil {
		t.Fatalf("EncodeAll: %v", err)
	}
	got := baudot.NewCodec().DecodeAll(codes)
	if !bytes.Equal(got, []byte("ATTACK AT DAWN")) {
		t.Fatalf("want upper-cased round trip, got %q", got)
	}
}

func TestRoundTrip_SupportedAlphabet(t *testing.T) {
	msgs := []string{
		"THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG",
		"REPORT 42: WIND 350/12, VISIBILITY 9999.",
		"A1B2C3",
		"(PARENS) AND 'QUOTES' + MORE?",
		"LINE ONE\r\nLINE TWO",
	}
	for _, msg := range msgs {
		enc := baudot.NewCodec()
		codes, err := enc.EncodeAll([]byte(msg))
		if err != nil {
			t.Fatalf("EncodeAll(%q): %v", msg, err)
		}
		got := baudot.NewCodec().DecodeAll(codes)
		if !bytes.Equal(got, []byte(msg)) {
			t.Fatalf("round trip of %q gave %q", msg, got)
		}
	}
}

func TestDecode_ShiftCodesEmitNothing(t *testing.T) {
	c := baudot.NewCodec()
	if _, ok := c.Decode(baudot.FIGS); ok {
		t.Fatal("FIGS emitted a byte")
	}
	if b, ok := c.Decode(1); !ok || b != '5' {
		t.Fatalf("code 1 in figures shift: want '5', got %q (ok=%v)", b, ok)
	}
	if _, ok := c.Decode(baudot.LTRS); ok {
		t.Fatal("LTRS emitted a byte")
	}
	if b, ok := c.Decode(1); !ok || b != 'T' {
		t.Fatalf("code 1 in letters shift: want 'T', got %q (ok=%v)", b, ok)
	}
}

func TestDecode_UnassignedFiguresPlaceholder(t *testing.T) {
	c := baudot.NewCodec()
	c.Decode(baudot.FIGS)
	if b, ok := c.Decode(11); !ok || b != '&' {
		t.Fatalf("unassigned figures code: want '&', got %q (ok=%v)", b, ok)
	}
}

func TestPackUnpack(t *testing.T) {
	codes := []domain.Code{0, 1, 27, 31, 30}
	got := baudot.Unpack(baudot.Pack(codes))
	for i := range codes {
		if got[i] != codes[i] {
			t.Fatalf("unit %d: want %d, got %d", i, codes[i], got[i])
		}
	}
	// Unpack masks stray high bits.
	if u := baudot.Unpack([]byte{0xFF}); u[0] != 31 {
		t.Fatalf("want high bits masked to 31, got %d", u[0])
	}
}
