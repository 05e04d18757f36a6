package machine

import (
	"fmt"

	"sturgeon/internal/domain"
)

// Wheel is one pinned cipher wheel. The pin pattern is fixed at
// construction; only the position changes, and Advance returns a new value
// rather than mutating in place.
type Wheel struct {
	pins []byte
	pos  int
}

// NewWheel validates and builds a wheel. The pattern must have at least one
// pin, every pin must be 0 or 1, and the start position must lie on the
// wheel.
func NewWheel(pins []byte, start int) (Wheel, error) {
	if len(pins) < 1 {
		return Wheel{}, fmt.Errorf("%w: empty pin pattern", domain.ErrConfig)
	}
	if start < 0 || start >= len(pins) {
		return Wheel{}, fmt.Errorf("%w: start position %d outside wheel of %d teeth",
			domain.ErrConfig, start, len(pins))
	}
	for i, p := range pins {
		if p > 1 {
			return Wheel{}, fmt.Errorf("%w: pin %d has value %d", domain.ErrConfig, i, p)
		}
	}
	w := Wheel{pins: make([]byte, len(pins)), pos: start}
	copy(w.pins, pins)
	return w, nil
}

// Bit returns the pin under the reading head.
func (w Wheel) Bit() byte { return w.pins[w.pos] }

// Advance returns the wheel moved one tooth forward.
func (w Wheel) Advance() Wheel {
	w.pos = (w.pos + 1) % len(w.pins)
	return w
}

// Period returns the tooth count.
func (w Wheel) Period() int { return len(w.pins) }

// Position returns the current position in [0, Period).
func (w Wheel) Position() int { return w.pos }
