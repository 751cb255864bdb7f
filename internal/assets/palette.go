package assets

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed placeholders.yaml
var placeholdersFile []byte

// Palette is the fixed set of placeholder images a new board's image is
// picked from.
type Palette struct {
	Images []string `yaml:"images"`
}

// LoadPalette loads the embedded placeholder palette
func LoadPalette() (*Palette, error) {
	var p Palette
	if err := yaml.Unmarshal(placeholdersFile, &p); err != nil {
		return nil, fmt.Errorf("unmarshal placeholder palette: %w", err)
	}

	if len(p.Images) == 0 {
		return nil, fmt.Errorf("placeholder palette is empty")
	}

	return &p, nil
}

// Pick returns one image chosen by intn, which must behave like
// rand.IntN: return a value in [0, n). Injecting the source keeps image
// assignment deterministic under test.
func (p *Palette) Pick(intn func(n int) int) string {
	return p.Images[intn(len(p.Images))]
}
