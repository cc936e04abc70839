// Package config 提供 YAML 驱动的引擎装配。
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Dextersathya/ecommerce-recommendation/catalog"
	"github.com/Dextersathya/ecommerce-recommendation/engine"
	"github.com/Dextersathya/ecommerce-recommendation/filter"
	"github.com/Dextersathya/ecommerce-recommendation/store"
)

// EngineConfig 是引擎配置文件的结构。
//
// 示例：
//
//	engine:
//	  view_weight: 0.5
//	  purchase_weight: 2.0
//	  cache_ttl_seconds: 3600
//	  neighbors: 10
//	  trending: true
//	  blacklist: ["sold_out_1"]
//	  rule: 'item.score < 0.05'
//	catalog: testdata/catalog.yaml
type EngineConfig struct {
	Engine struct {
		ViewWeight      float64  `yaml:"view_weight"`
		PurchaseWeight  float64  `yaml:"purchase_weight"`
		CacheTTLSeconds int64    `yaml:"cache_ttl_seconds"`
		Neighbors       int      `yaml:"neighbors"`
		Trending        bool     `yaml:"trending"`
		Blacklist       []string `yaml:"blacklist"`
		Rule            string   `yaml:"rule"`
	} `yaml:"engine"`

	// Catalog 是可选的商品目录文件路径（启动时装载）
	Catalog string `yaml:"catalog"`
}

// Load 从 YAML 文件读取引擎配置。
func Load(path string) (*EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg EngineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	return &cfg, nil
}

// Build 根据配置装配引擎。
func (c *EngineConfig) Build() (*engine.Engine, error) {
	opts := make([]engine.Option, 0)

	if c.Engine.ViewWeight > 0 || c.Engine.PurchaseWeight > 0 {
		view := c.Engine.ViewWeight
		purchase := c.Engine.PurchaseWeight
		if view <= 0 {
			view = 0.5
		}
		if purchase <= 0 {
			purchase = 2.0
		}
		opts = append(opts, engine.WithWeights(view, purchase))
	}
	if c.Engine.CacheTTLSeconds > 0 {
		opts = append(opts, engine.WithCacheTTL(time.Duration(c.Engine.CacheTTLSeconds)*time.Second))
	}
	if c.Engine.Neighbors > 0 {
		opts = append(opts, engine.WithNeighbors(c.Engine.Neighbors))
	}
	if c.Engine.Trending {
		opts = append(opts, engine.WithTrending(store.NewMemoryStore()))
	}

	filters := make([]filter.Filter, 0)
	if len(c.Engine.Blacklist) > 0 {
		filters = append(filters, &filter.BlacklistFilter{ProductIDs: c.Engine.Blacklist})
	}
	if c.Engine.Rule != "" {
		filters = append(filters, &filter.RuleFilter{Expr: c.Engine.Rule})
	}
	if len(filters) > 0 {
		opts = append(opts, engine.WithFilters(filters...))
	}

	eng := engine.New(opts...)

	if c.Catalog != "" {
		f, err := catalog.LoadYAML(c.Catalog)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		f.Register(eng.Catalog())
	}

	return eng, nil
}
