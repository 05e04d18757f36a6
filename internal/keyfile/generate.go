package keyfile

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"sturgeon/internal/domain"
)

// DefaultTeeth holds the historical SZ40-style teeth counts, assigned to
// the ten wheel roles in teleprinter-bit order. The physical machine
// labelled wheels A-K; the assignment here deliberately follows the bit
// stream order instead.
var DefaultTeeth = [domain.NumWheels]int{73, 71, 69, 67, 65, 64, 61, 59, 53, 47}

// Generate builds a fresh random key setting: uniformly random pins for
// every tooth and a uniformly random start position per wheel.
func Generate(teeth [domain.NumWheels]int) (domain.KeySetting, error) {
	var key domain.KeySetting
	for i, t := range teeth {
		if t < 1 {
			return domain.KeySetting{}, fmt.Errorf("%w: wheel %d: teeth count %d",
				domain.ErrConfig, i+1, t)
		}
		pins := make([]byte, t)
		if _, err := rand.Read(pins); err != nil {
			return domain.KeySetting{}, err
		}
		for j := range pins {
			pins[j] &= 1
		}
		pos, err := rand.Int(rand.Reader, big.NewInt(int64(t)))
		if err != nil {
			return domain.KeySetting{}, err
		}
		key.Wheels[i] = domain.WheelSetting{Pins: pins, Position: int(pos.Int64())}
	}
	return key, nil
}
