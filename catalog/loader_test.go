package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const catalogYAML = `
products:
  - id: laptop
    name: Laptop
    price: 999.0
    brand: Acme
    features:
      category_score: 0.9
      price_range: 0.8
  - id: mouse
    name: Mouse
    features:
      category_score: 0.4
      price_range: 1.5
`

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(catalogYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("LoadYAML() error = %v", err)
	}
	if len(f.Products) != 2 {
		t.Fatalf("len(Products) = %d, want 2", len(f.Products))
	}
	if f.Products[0].ID != "laptop" || f.Products[0].Price != 999.0 {
		t.Errorf("first product = %+v", f.Products[0])
	}

	c := New()
	clamped := f.Register(c)
	if clamped != 1 { // mouse price_range 1.5 -> 1.0
		t.Errorf("Register() clamped = %d, want 1", clamped)
	}
	fs, ok := c.Features("mouse")
	if !ok || fs["price_range"] != 1.0 {
		t.Errorf("mouse features = %v (ok=%v), want clamped price_range", fs, ok)
	}
}

func TestLoadYAML_MissingFile(t *testing.T) {
	if _, err := LoadYAML(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadYAML() error = nil for missing file")
	}
}
