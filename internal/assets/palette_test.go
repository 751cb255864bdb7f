package assets

import "testing"

func TestLoadPalette(t *testing.T) {
	p, err := LoadPalette()
	if err != nil {
		t.Fatalf("LoadPalette() error = %v", err)
	}

	if len(p.Images) != 10 {
		t.Errorf("palette size = %d, want 10", len(p.Images))
	}

	for i, img := range p.Images {
		if img == "" {
			t.Errorf("image %d is empty", i)
		}
	}
}

func TestPalettePick(t *testing.T) {
	p, err := LoadPalette()
	if err != nil {
		t.Fatalf("LoadPalette() error = %v", err)
	}

	if got := p.Pick(func(n int) int { return 0 }); got != "/placeholders/1.svg" {
		t.Errorf("Pick(first) = %q, want /placeholders/1.svg", got)
	}

	last := len(p.Images) - 1
	if got := p.Pick(func(n int) int { return last }); got != "/placeholders/10.svg" {
		t.Errorf("Pick(last) = %q, want /placeholders/10.svg", got)
	}

	// The index source must be called with the palette size
	p.Pick(func(n int) int {
		if n != 10 {
			t.Errorf("Pick passed n = %d, want 10", n)
		}
		return 0
	})
}
