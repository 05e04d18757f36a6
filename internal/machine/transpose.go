package machine

import "sturgeon/internal/domain"

// Plan gates the five pairwise bit swaps of the transposition stage.
// Plan[i] enables swap step i.
type Plan [domain.NumSubstitution]bool

// swapPairs lists the bit positions exchanged by each swap step, in
// application order. Each swap composes on top of the previous ones, so
// the overall permutation is generally not self-inverse.
var swapPairs = [domain.NumSubstitution][2]uint{
	{0, 4},
	{0, 1},
	{1, 2},
	{2, 3},
	{3, 4},
}

// Apply runs the enabled swaps in order 0 to 4.
func (p Plan) Apply(c domain.Code) domain.Code {
	for i, pair := range swapPairs {
		if p[i] {
			c = swapBits(c, pair[0], pair[1])
		}
	}
	return c
}

// Invert runs the enabled swaps in order 4 to 0, undoing Apply exactly.
func (p Plan) Invert(c domain.Code) domain.Code {
	for i := len(swapPairs) - 1; i >= 0; i-- {
		if p[i] {
			c = swapBits(c, swapPairs[i][0], swapPairs[i][1])
		}
	}
	return c
}

func swapBits(c domain.Code, a, b uint) domain.Code {
	x := ((c >> a) ^ (c >> b)) & 1
	return c ^ (x << a) ^ (x << b)
}
