package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Dextersathya/ecommerce-recommendation/core"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "config.yaml", `
engine:
  view_weight: 1.0
  purchase_weight: 3.0
  cache_ttl_seconds: 600
  neighbors: 5
  trending: true
  blacklist: ["sold_out"]
  rule: 'item.score < 0.05'
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Engine.ViewWeight != 1.0 || cfg.Engine.PurchaseWeight != 3.0 {
		t.Errorf("weights = %v/%v, want 1.0/3.0", cfg.Engine.ViewWeight, cfg.Engine.PurchaseWeight)
	}
	if cfg.Engine.CacheTTLSeconds != 600 || cfg.Engine.Neighbors != 5 {
		t.Errorf("ttl/neighbors = %v/%v, want 600/5", cfg.Engine.CacheTTLSeconds, cfg.Engine.Neighbors)
	}
	if !cfg.Engine.Trending {
		t.Error("trending = false, want true")
	}
	if len(cfg.Engine.Blacklist) != 1 || cfg.Engine.Blacklist[0] != "sold_out" {
		t.Errorf("blacklist = %v", cfg.Engine.Blacklist)
	}
	if cfg.Engine.Rule != "item.score < 0.05" {
		t.Errorf("rule = %q", cfg.Engine.Rule)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("no/such/config.yaml"); err == nil {
		t.Error("Load() of missing file should error")
	}
}

func TestEngineConfig_Build(t *testing.T) {
	ctx := context.Background()
	catalogPath := writeFile(t, "catalog.yaml", `
products:
  - id: A
    features: {cat: 0.8, price: 0.6}
  - id: B
    features: {cat: 0.2, price: 0.2}
`)
	cfgPath := writeFile(t, "config.yaml", `
engine:
  trending: true
  blacklist: ["banned"]
catalog: `+catalogPath+`
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	eng, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if eng.Catalog().Len() != 2 {
		t.Errorf("catalog Len() = %d, want 2", eng.Catalog().Len())
	}

	eng.RecordInteraction(ctx, "alice", "A", core.InteractionView)
	got, err := eng.Recommend(ctx, "alice", 1)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(got) != 1 || got[0] != "B" {
		t.Errorf("Recommend() = %v, want [B]", got)
	}

	trending, err := eng.Trending(ctx, 5)
	if err != nil {
		t.Fatalf("Trending() error = %v", err)
	}
	if len(trending) != 1 || trending[0] != "A" {
		t.Errorf("Trending() = %v, want [A]", trending)
	}
}

func TestEngineConfig_BuildBadCatalogPath(t *testing.T) {
	cfgPath := writeFile(t, "config.yaml", `
catalog: no/such/catalog.yaml
`)
	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := cfg.Build(); err == nil {
		t.Error("Build() with missing catalog should error")
	}
}
