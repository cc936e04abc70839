package rerank

import (
	"context"

	"github.com/Dextersathya/ecommerce-recommendation/core"
	"github.com/Dextersathya/ecommerce-recommendation/pipeline"
)

// TopNNode 是一个 Top-N 截断节点，用于在链路末端截取前 N 个商品。
//
// 使用场景：
//   - 混合召回 + 过滤之后，把结果压到请求预算内
//   - 配合 FilterNode 使用，保证 filter 剔除后仍不超过预算
//
// 示例：
//
//	p := &pipeline.Pipeline{
//	    Nodes: []pipeline.Node{
//	        hybridNode,               // 混合召回
//	        &filter.FilterNode{...},  // 过滤
//	        &rerank.TopNNode{N: 10},  // 截取 Top 10
//	    },
//	}
type TopNNode struct {
	// N 要保留的商品数量（Top N）
	// 如果 N < 0，则返回所有商品（不截断）；N == 0 返回空
	N int
}

func (n *TopNNode) Name() string {
	return "rerank.topn"
}

func (n *TopNNode) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *TopNNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if n.N < 0 {
		return items, nil
	}
	if len(items) <= n.N {
		return items, nil
	}
	return items[:n.N], nil
}
