package interaction

import (
	"context"
	"time"

	"github.com/Dextersathya/ecommerce-recommendation/core"
)

// 默认行为权重：浏览 +0.5，购买 +2.0。
const (
	DefaultViewWeight     = 0.5
	DefaultPurchaseWeight = 2.0
)

// TrendingKey 是热门榜单在 KeyValueStore 中的 zset key。
const TrendingKey = "trending:products"

// Store 是交互存储：事件日志 + 评分矩阵 + 失效通知。
//
// Record 是唯一的写入口：追加日志、累加矩阵权重、触发该用户的
// 缓存失效回调。存储与引擎共享"单一逻辑调用方"模型，内部不加锁。
type Store struct {
	log    *Log
	matrix *Matrix

	viewWeight     float64
	purchaseWeight float64

	// trending 可选：记录全局交互热度（ZIncrBy 权重）
	trending core.KeyValueStore

	invalidateFns []func(userID string)
}

// Option 配置 Store。
type Option func(*Store)

// WithWeights 覆盖默认的行为权重。
func WithWeights(view, purchase float64) Option {
	return func(s *Store) {
		s.viewWeight = view
		s.purchaseWeight = purchase
	}
}

// WithTrending 启用热门榜单计数，写入给定的 KeyValueStore。
func WithTrending(kv core.KeyValueStore) Option {
	return func(s *Store) {
		s.trending = kv
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		log:            NewLog(),
		matrix:         NewMatrix(),
		viewWeight:     DefaultViewWeight,
		purchaseWeight: DefaultPurchaseWeight,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnInvalidate 注册失效回调；每次成功 Record 后按用户触发。
// 引擎用它来清除该用户的全部推荐缓存条目。
func (s *Store) OnInvalidate(fn func(userID string)) {
	if fn != nil {
		s.invalidateFns = append(s.invalidateFns, fn)
	}
}

// Record 记录一条交互事件。
// 未知行为类型是定义好的 no-op：不写日志、不改矩阵、不触发失效。
// ts 省略时取当前时间。
func (s *Store) Record(ctx context.Context, userID, productID string, kind core.InteractionKind, ts ...time.Time) {
	if !kind.Valid() {
		return
	}

	when := time.Now()
	if len(ts) > 0 && !ts[0].IsZero() {
		when = ts[0]
	}

	s.log.Append(core.InteractionEvent{
		UserID:    userID,
		ProductID: productID,
		Kind:      kind,
		Timestamp: when,
	})

	weight := s.viewWeight
	if kind == core.InteractionPurchase {
		weight = s.purchaseWeight
	}
	s.matrix.Add(userID, productID, weight)

	if s.trending != nil {
		// 榜单计数失败不影响主链路
		_ = s.trending.ZIncrBy(ctx, TrendingKey, weight, productID)
	}

	for _, fn := range s.invalidateFns {
		fn(userID)
	}
}

// Log 返回事件日志。
func (s *Store) Log() *Log { return s.log }

// Matrix 返回评分矩阵。
func (s *Store) Matrix() *Matrix { return s.matrix }

// InteractedProducts 实现 recall.InteractionSource。
func (s *Store) InteractedProducts(ctx context.Context, userID string) ([]string, error) {
	return s.log.InteractedProducts(userID), nil
}

// UserWeights 实现 recall.InteractionSource。
func (s *Store) UserWeights(ctx context.Context, userID string) (map[string]float64, error) {
	return s.matrix.UserWeights(userID), nil
}

// AllUsers 实现 recall.InteractionSource。
func (s *Store) AllUsers(ctx context.Context) ([]string, error) {
	return s.matrix.Users(), nil
}

// AllProducts 实现 recall.InteractionSource。
func (s *Store) AllProducts(ctx context.Context) ([]string, error) {
	return s.matrix.Products(), nil
}
