package registry

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/glypha-labs/glypha/internal/font"
	"github.com/glypha-labs/glypha/internal/fontschema"
	"go.yaml.in/yaml/v3"
)

//go:embed seed/defaults.yaml
var defaultSeed []byte

// DefaultSeed returns the built-in starter fonts.
func DefaultSeed() ([]font.Input, error) {
	inputs, err := ParseSeed(defaultSeed)
	if err != nil {
		return nil, fmt.Errorf("parsing built-in seed: %w", err)
	}
	return inputs, nil
}

// LoadSeedFile reads and validates a YAML seed document.
func LoadSeedFile(path string) ([]font.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file %s: %w", path, err)
	}
	inputs, err := ParseSeed(data)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return inputs, nil
}

// ParseSeed validates data against the seed schema and decodes it.
func ParseSeed(data []byte) ([]font.Input, error) {
	res, err := fontschema.ValidateYAML(fontschema.KindSeed, data)
	if err != nil {
		return nil, err
	}
	if !res.Valid {
		return nil, &font.ValidationError{Field: "seed", Reason: res.Summary()}
	}

	var inputs []font.Input
	if err := yaml.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("decoding seed: %w", err)
	}
	return inputs, nil
}
