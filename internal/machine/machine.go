package machine

import "sturgeon/internal/domain"

// Machine is one keyed T52a instance. Processing is a fold over the code
// sequence: each unit reads the mask and plan at the current wheel
// positions, transforms, then steps every wheel once. No other state
// persists between units.
type Machine struct {
	bank Bank
}

// New builds a machine from a key setting.
func New(key domain.KeySetting) (*Machine, error) {
	bank, err := NewBank(key)
	if err != nil {
		return nil, err
	}
	return &Machine{bank: bank}, nil
}

// EncryptCode enciphers one code unit: XOR with the substitution mask,
// then the gated transposition, then one step of every wheel.
func (m *Machine) EncryptCode(c domain.Code) domain.Code {
	mask := m.bank.SubstitutionMask()
	plan := m.bank.TranspositionPlan()
	out := plan.Apply((c & domain.CodeMask) ^ mask)
	m.bank = m.bank.Advance()
	return out
}

// DecryptCode deciphers one code unit: inverse transposition, then XOR,
// then one step of every wheel. The wheel trajectory is identical to
// encryption's, so the two are exact inverses when seeded with the same
// key.
func (m *Machine) DecryptCode(c domain.Code) domain.Code {
	mask := m.bank.SubstitutionMask()
	plan := m.bank.TranspositionPlan()
	out := plan.Invert(c&domain.CodeMask) ^ mask
	m.bank = m.bank.Advance()
	return out
}

// EncryptAll enciphers a code sequence in order.
func (m *Machine) EncryptAll(in []domain.Code) []domain.Code {
	out := make([]domain.Code, len(in))
	for i, c := range in {
		out[i] = m.EncryptCode(c)
	}
	return out
}

// DecryptAll deciphers a code sequence in order.
func (m *Machine) DecryptAll(in []domain.Code) []domain.Code {
	out := make([]domain.Code, len(in))
	for i, c := range in {
		out[i] = m.DecryptCode(c)
	}
	return out
}

// Positions exposes the current wheel positions.
func (m *Machine) Positions() [domain.NumWheels]int { return m.bank.Positions() }
