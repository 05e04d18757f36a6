package machine

import (
	"fmt"

	"sturgeon/internal/domain"
)

// Bank is the full set of ten wheels. Wheels [0,5) are the substitution
// wheels, wheel i feeding bit i of the XOR mask; wheels [5,10) are the
// transposition wheels, wheel 5+i gating swap step i of the Plan. Roles are
// fixed at construction.
type Bank struct {
	wheels [domain.NumWheels]Wheel
}

// NewBank builds a bank from a key setting, validating every wheel.
func NewBank(key domain.KeySetting) (Bank, error) {
	var b Bank
	for i, ws := range key.Wheels {
		w, err := NewWheel(ws.Pins, ws.Position)
		if err != nil {
			return Bank{}, fmt.Errorf("wheel %d: %w", i+1, err)
		}
		b.wheels[i] = w
	}
	return b, nil
}

// SubstitutionMask packs the substitution wheel bits into a 5-bit mask,
// bit i taken from wheel i.
func (b Bank) SubstitutionMask() domain.Code {
	var m domain.Code
	for i := 0; i < domain.NumSubstitution; i++ {
		m |= domain.Code(b.wheels[i].Bit()) << i
	}
	return m
}

// TranspositionPlan reads the transposition wheel bits into a swap plan.
func (b Bank) TranspositionPlan() Plan {
	var p Plan
	for i := range p {
		p[i] = b.wheels[domain.NumSubstitution+i].Bit() == 1
	}
	return p
}

// Advance returns the bank with every wheel moved one step.
func (b Bank) Advance() Bank {
	for i := range b.wheels {
		b.wheels[i] = b.wheels[i].Advance()
	}
	return b
}

// Positions returns the current position of every wheel.
func (b Bank) Positions() [domain.NumWheels]int {
	var out [domain.NumWheels]int
	for i, w := range b.wheels {
		out[i] = w.Position()
	}
	return out
}
