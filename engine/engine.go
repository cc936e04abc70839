// Package engine 对外提供电商推荐引擎：
// 内容召回 + 用户协同过滤召回的混合推荐，带按 (user, n) 细分的结果缓存。
//
// 引擎假定同一时刻只有一个逻辑调用方；所有操作同步执行、运行到完成。
// 部署在并发前端之后时，需要在外层做串行化（例如一把互斥锁包住全部操作）。
package engine

import (
	"context"
	"time"

	"github.com/Dextersathya/ecommerce-recommendation/catalog"
	"github.com/Dextersathya/ecommerce-recommendation/core"
	"github.com/Dextersathya/ecommerce-recommendation/filter"
	"github.com/Dextersathya/ecommerce-recommendation/interaction"
	"github.com/Dextersathya/ecommerce-recommendation/pipeline"
	"github.com/Dextersathya/ecommerce-recommendation/recall"
	"github.com/Dextersathya/ecommerce-recommendation/rerank"
)

// ErrTrendingDisabled 表示引擎未配置热门榜单存储。
var ErrTrendingDisabled = core.NewDomainError(core.ModuleEngine, core.ErrorCodeNotSupported, "engine: trending store not configured")

// Engine 是推荐引擎实例，持有商品目录、交互存储、召回源与结果缓存。
type Engine struct {
	catalog      *catalog.Catalog
	interactions *interaction.Store
	cache        *resultCache

	content       *recall.Content
	collaborative *recall.UserCF
	filters       []filter.Filter

	trending core.KeyValueStore
	now      func() time.Time

	cacheTTL       time.Duration
	neighbors      int
	viewWeight     float64
	purchaseWeight float64
}

// Option 配置 Engine。
type Option func(*Engine)

// WithCacheTTL 覆盖结果缓存有效期（默认 1 小时）。
func WithCacheTTL(ttl time.Duration) Option {
	return func(e *Engine) { e.cacheTTL = ttl }
}

// WithClock 注入时钟，测试用。
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithNeighbors 覆盖协同过滤的相似用户数（默认 10）。
func WithNeighbors(k int) Option {
	return func(e *Engine) { e.neighbors = k }
}

// WithWeights 覆盖行为权重（默认浏览 0.5、购买 2.0）。
func WithWeights(view, purchase float64) Option {
	return func(e *Engine) {
		e.viewWeight = view
		e.purchaseWeight = purchase
	}
}

// WithTrending 启用热门榜单，交互计数写入给定的 KeyValueStore。
func WithTrending(kv core.KeyValueStore) Option {
	return func(e *Engine) { e.trending = kv }
}

// WithFilters 在混合召回之后、截断之前追加过滤器（黑名单、规则等）。
// 默认为空，不改变合并语义。
func WithFilters(filters ...filter.Filter) Option {
	return func(e *Engine) { e.filters = append(e.filters, filters...) }
}

func New(opts ...Option) *Engine {
	e := &Engine{
		catalog:        catalog.New(),
		now:            time.Now,
		cacheTTL:       DefaultCacheTTL,
		neighbors:      10,
		viewWeight:     interaction.DefaultViewWeight,
		purchaseWeight: interaction.DefaultPurchaseWeight,
	}
	for _, opt := range opts {
		opt(e)
	}

	storeOpts := []interaction.Option{
		interaction.WithWeights(e.viewWeight, e.purchaseWeight),
	}
	if e.trending != nil {
		storeOpts = append(storeOpts, interaction.WithTrending(e.trending))
	}
	e.interactions = interaction.NewStore(storeOpts...)

	e.cache = newResultCache(e.cacheTTL, e.now)
	e.interactions.OnInvalidate(e.cache.Invalidate)

	e.content = &recall.Content{
		Catalog:      recall.NewCatalogAdapter(e.catalog),
		Interactions: e.interactions,
	}
	e.collaborative = &recall.UserCF{
		Interactions:     e.interactions,
		TopKSimilarUsers: e.neighbors,
	}
	return e
}

// AddProduct 注册（或覆盖）商品的内容特征。
// 越界特征值在注册时被 clamp 到 [0,1]。
func (e *Engine) AddProduct(productID string, features map[string]float64) {
	e.catalog.Add(productID, features)
}

// Catalog 返回商品目录（供目录装载器、展示层使用）。
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// RecordInteraction 记录一次用户交互。
// 未知行为类型是定义好的 no-op；成功记录会使该用户的全部缓存条目失效。
// ts 省略时取当前时间。
func (e *Engine) RecordInteraction(ctx context.Context, userID, productID string, kind core.InteractionKind, ts ...time.Time) {
	e.interactions.Record(ctx, userID, productID, kind, ts...)
}

// Recommend 返回为用户计算的至多 n 个推荐商品 ID。
//
// 结果缓存按 (user, n) 细分，TTL 内直接命中返回；
// 未命中时并发执行两路召回、交替合并、过滤、截断，然后写回缓存。
// 保证：结果无重复，长度 ≤ n；两路候选都耗尽时可以不足 n。
func (e *Engine) Recommend(ctx context.Context, userID string, n int) ([]string, error) {
	if n < 0 {
		n = 0
	}

	if ids, ok := e.cache.Get(userID, n); ok {
		return ids, nil
	}

	items, err := e.compute(ctx, userID, n)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	e.cache.Put(userID, n, ids)

	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}

// Explain 与 Recommend 走同一条计算链路，但跳过缓存，
// 返回带分数与标签的 Item，用于调试与解释。
func (e *Engine) Explain(ctx context.Context, userID string, n int) ([]*core.Item, error) {
	if n < 0 {
		n = 0
	}
	return e.compute(ctx, userID, n)
}

// Trending 返回全局交互热度最高的至多 n 个商品 ID。
// 需要通过 WithTrending 启用。
func (e *Engine) Trending(ctx context.Context, n int) ([]string, error) {
	if e.trending == nil {
		return nil, ErrTrendingDisabled
	}
	if n <= 0 {
		return nil, nil
	}
	return e.trending.ZRange(ctx, interaction.TrendingKey, 0, int64(n)-1)
}

func (e *Engine) compute(ctx context.Context, userID string, n int) ([]*core.Item, error) {
	rctx := &core.RecommendContext{
		UserID: userID,
		N:      n,
	}

	nodes := []pipeline.Node{
		&recall.Hybrid{
			Content:       e.content,
			Collaborative: e.collaborative,
		},
	}
	if len(e.filters) > 0 {
		nodes = append(nodes, &filter.FilterNode{Filters: e.filters})
	}
	nodes = append(nodes, &rerank.TopNNode{N: n})

	p := &pipeline.Pipeline{Nodes: nodes}
	return p.Run(ctx, rctx, nil)
}
