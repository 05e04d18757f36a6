package machine_test

import (
	"testing"

	"sturgeon/internal/domain"
	"sturgeon/internal/machine"
)

// planFromBits expands a 5-bit value into a Plan, bit i enabling step i.
func planFromBits(bits int) machine.Plan {
	var p machine.Plan
	for i := range p {
		p[i] = bits>>i&1 == 1
	}
	return p
}

// Every plan must be a permutation of the 32 code values, and Invert must
// undo Apply exactly. 32 plans x 32 codes is small enough to enumerate.
func TestPlan_Exhaustive(t *testing.T) {
	for bits := 0; bits < 32; bits++ {
		p := planFromBits(bits)
		var seen [32]bool
		for c := domain.Code(0); c < 32; c++ {
			out := p.Apply(c)
			if out > 31 {
				t.Fatalf("plan %05b: Apply(%d) = %d, outside 5 bits", bits, c, out)
			}
			if seen[out] {
				t.Fatalf("plan %05b: output %d produced twice", bits, out)
			}
			seen[out] = true
			if back := p.Invert(out); back != c {
				t.Fatalf("plan %05b: Invert(Apply(%d)) = %d", bits, c, back)
			}
		}
	}
}

func TestPlan_EmptyIsIdentity(t *testing.T) {
	var p machine.Plan
	for c := domain.Code(0); c < 32; c++ {
		if got := p.Apply(c); got != c {
			t.Fatalf("empty plan moved %d to %d", c, got)
		}
	}
}

func TestPlan_KnownVector(t *testing.T) {
	// All five swaps enabled: 00001 passes through
	// (0,4) (0,1) (1,2) (2,3) (3,4) and lands on 01000.
	p := planFromBits(31)
	if got := p.Apply(1); got != 8 {
		t.Fatalf("Apply(1) with full plan: want 8, got %d", got)
	}
	if got := p.Invert(8); got != 1 {
		t.Fatalf("Invert(8) with full plan: want 1, got %d", got)
	}
}

// The composed permutation is not self-inverse, so re-applying the plan
// must not decrypt.
func TestPlan_NotSelfInverse(t *testing.T) {
	p := planFromBits(31)
	if got := p.Apply(p.Apply(1)); got == 1 {
		t.Fatal("full plan applied twice returned to the input")
	}
}
