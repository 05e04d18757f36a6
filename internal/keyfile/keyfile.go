package keyfile

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"sturgeon/internal/domain"
)

// record is the on-disk form of one wheel.
type record struct {
	Teeth    int    `yaml:"teeth"`
	Pins     string `yaml:"pins"`
	Position int    `yaml:"position"`
}

type schema struct {
	Wheels []record `yaml:"wheels"`
}

// header precedes the YAML body in every saved key file. Load ignores it,
// so the save-load-save round trip stays byte-identical.
const header = `# T52a key file. Ten wheel records in teleprinter-bit order:
# substitution wheels 1-5, then transposition wheels 1-5.
# teeth: wheel period; pins: '0'/'1' pattern, one per tooth; position: start index.
`

// Save serialises a key setting to its canonical text form.
func Save(key domain.KeySetting) ([]byte, error) {
	var s schema
	s.Wheels = make([]record, 0, domain.NumWheels)
	for _, w := range key.Wheels {
		var pins strings.Builder
		for _, p := range w.Pins {
			pins.WriteByte('0' + p)
		}
		s.Wheels = append(s.Wheels, record{
			Teeth:    w.Period(),
			Pins:     pins.String(),
			Position: w.Position,
		})
	}
	body, err := yaml.Marshal(s)
	if err != nil {
		return nil, err
	}
	return append([]byte(header), body...), nil
}

// Load parses key file text, validating every record.
func Load(data []byte) (domain.KeySetting, error) {
	var s schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return domain.KeySetting{}, fmt.Errorf("%w: %v", domain.ErrFormat, err)
	}
	if len(s.Wheels) != domain.NumWheels {
		return domain.KeySetting{}, fmt.Errorf("%w: want %d wheel records, got %d",
			domain.ErrFormat, domain.NumWheels, len(s.Wheels))
	}

	var key domain.KeySetting
	for i, r := range s.Wheels {
		if r.Teeth < 1 {
			return domain.KeySetting{}, fmt.Errorf("%w: wheel %d: teeth count %d",
				domain.ErrFormat, i+1, r.Teeth)
		}
		if len(r.Pins) != r.Teeth {
			return domain.KeySetting{}, fmt.Errorf("%w: wheel %d: %d pins for %d teeth",
				domain.ErrFormat, i+1, len(r.Pins), r.Teeth)
		}
		if r.Position < 0 || r.Position >= r.Teeth {
			return domain.KeySetting{}, fmt.Errorf("%w: wheel %d: position %d outside [0,%d)",
				domain.ErrFormat, i+1, r.Position, r.Teeth)
		}
		pins := make([]byte, r.Teeth)
		for j := 0; j < len(r.Pins); j++ {
			switch r.Pins[j] {
			case '0':
				pins[j] = 0
			case '1':
				pins[j] = 1
			default:
				return domain.KeySetting{}, fmt.Errorf("%w: wheel %d: pin %d is %q, want '0' or '1'",
					domain.ErrFormat, i+1, j, r.Pins[j])
			}
		}
		key.Wheels[i] = domain.WheelSetting{Pins: pins, Position: r.Position}
	}
	return key, nil
}
