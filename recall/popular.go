package recall

import (
	"context"

	"github.com/Dextersathya/ecommerce-recommendation/core"
	"github.com/Dextersathya/ecommerce-recommendation/interaction"
	"github.com/Dextersathya/ecommerce-recommendation/pipeline"
	"github.com/Dextersathya/ecommerce-recommendation/pkg/utils"
)

// Popular 是热门召回源：从 KeyValueStore 的有序集合读取全局交互热度榜。
// interaction.Store 开启 WithTrending 后会按交互权重累加该榜单。
// Popular 同时实现 Source 和 Node 接口，可以直接在 Pipeline 中使用。
type Popular struct {
	Store core.KeyValueStore

	// Key 是榜单 zset 的 key，默认 interaction.TrendingKey
	Key string

	// IDs 是 Store 不可用时的 fallback 内存列表
	IDs []string

	// TopK 在 rctx.N 未给出预算时的默认返回数量
	TopK int
}

func (r *Popular) Name() string        { return "recall.popular" }
func (r *Popular) Kind() pipeline.Kind { return pipeline.KindRecall }

// Process 实现 Node 接口，直接调用 Recall
func (r *Popular) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	return r.Recall(ctx, rctx)
}

// Recall 实现 Source 接口
func (r *Popular) Recall(
	ctx context.Context,
	rctx *core.RecommendContext,
) ([]*core.Item, error) {
	topK := r.TopK
	if rctx != nil && rctx.N > 0 {
		topK = rctx.N
	}
	if topK <= 0 {
		topK = 20
	}

	var ids []string
	if r.Store != nil {
		key := r.Key
		if key == "" {
			key = interaction.TrendingKey
		}
		members, err := r.Store.ZRange(ctx, key, 0, int64(topK)-1)
		if err == nil && len(members) > 0 {
			ids = members
		}
	}

	// Fallback：使用内存 IDs
	if len(ids) == 0 {
		ids = r.IDs
	}
	if len(ids) > topK {
		ids = ids[:topK]
	}

	out := make([]*core.Item, 0, len(ids))
	for _, id := range ids {
		it := core.NewItem(id)
		it.PutLabel("recall_source", utils.Label{Value: "popular", Source: "recall"})
		out = append(out, it)
	}
	return out, nil
}
