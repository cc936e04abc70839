package config

import (
	"fmt"

	"github.com/Dextersathya/ecommerce-recommendation/filter"
	"github.com/Dextersathya/ecommerce-recommendation/pipeline"
	"github.com/Dextersathya/ecommerce-recommendation/pkg/conv"
	"github.com/Dextersathya/ecommerce-recommendation/recall"
	"github.com/Dextersathya/ecommerce-recommendation/rerank"
)

// DefaultFactory 返回一个包含内置 Node 构建器的默认工厂，
// 供 pipeline.Config 配置驱动装配使用。
func DefaultFactory() *pipeline.NodeFactory {
	factory := pipeline.NewNodeFactory()

	factory.Register("recall.popular", buildPopularNode)
	factory.Register("filter", buildFilterNode)
	factory.Register("rerank.topn", buildTopNNode)

	return factory
}

func buildPopularNode(config map[string]interface{}) (pipeline.Node, error) {
	ids := conv.SliceAnyToString(config["ids"])
	if ids == nil {
		ids = []string{}
	}
	node := &recall.Popular{IDs: ids}
	if k := conv.ConfigGetInt64(config, "top_k", 0); k > 0 {
		node.TopK = int(k)
	}
	if key := conv.ConfigGet[string](config, "key", ""); key != "" {
		node.Key = key
	}
	return node, nil
}

func buildFilterNode(config map[string]interface{}) (pipeline.Node, error) {
	filters := make([]filter.Filter, 0)

	if blacklist := conv.SliceAnyToString(config["blacklist"]); len(blacklist) > 0 {
		filters = append(filters, &filter.BlacklistFilter{ProductIDs: blacklist})
	}
	if rule := conv.ConfigGet[string](config, "rule", ""); rule != "" {
		filters = append(filters, &filter.RuleFilter{Expr: rule})
	}

	if len(filters) == 0 {
		return nil, fmt.Errorf("filter node needs blacklist or rule")
	}
	return &filter.FilterNode{Filters: filters}, nil
}

func buildTopNNode(config map[string]interface{}) (pipeline.Node, error) {
	n := conv.ConfigGetInt64(config, "n", 0)
	if n <= 0 {
		return nil, fmt.Errorf("rerank.topn needs positive n")
	}
	return &rerank.TopNNode{N: int(n)}, nil
}
