package config

import (
	"context"
	"testing"

	"github.com/Dextersathya/ecommerce-recommendation/core"
	"github.com/Dextersathya/ecommerce-recommendation/pipeline"
)

func TestDefaultFactory_BuildPipelineFromYAML(t *testing.T) {
	path := writeFile(t, "pipeline.yaml", `
pipeline:
  name: homepage
  nodes:
    - type: recall.popular
      config:
        ids: ["p1", "banned", "p2", "p3"]
    - type: filter
      config:
        blacklist: ["banned"]
    - type: rerank.topn
      config:
        n: 2
`)

	cfg, err := pipeline.LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML() error = %v", err)
	}
	if cfg.Pipeline.Name != "homepage" || len(cfg.Pipeline.Nodes) != 3 {
		t.Fatalf("config = %+v", cfg.Pipeline)
	}

	p, err := cfg.BuildPipeline(DefaultFactory())
	if err != nil {
		t.Fatalf("BuildPipeline() error = %v", err)
	}

	items, err := p.Run(context.Background(), &core.RecommendContext{UserID: "alice"}, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	// banned 被过滤，TopN 截到 2
	if len(items) != 2 || items[0].ID != "p1" || items[1].ID != "p2" {
		got := make([]string, 0, len(items))
		for _, it := range items {
			got = append(got, it.ID)
		}
		t.Errorf("Run() = %v, want [p1 p2]", got)
	}
}

func TestDefaultFactory_UnknownNodeType(t *testing.T) {
	if _, err := DefaultFactory().Build("recall.embedding", nil); err == nil {
		t.Error("Build() of unregistered type should error")
	}
}

func TestDefaultFactory_InvalidNodeConfig(t *testing.T) {
	tests := []struct {
		name     string
		nodeType string
		config   map[string]interface{}
	}{
		{"filter without filters", "filter", map[string]interface{}{}},
		{"topn without n", "rerank.topn", map[string]interface{}{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DefaultFactory().Build(tt.nodeType, tt.config); err == nil {
				t.Errorf("Build(%s) should error", tt.nodeType)
			}
		})
	}
}
