package recall

import (
	"context"

	"github.com/Dextersathya/ecommerce-recommendation/core"
)

// Source 表示一个可复用的召回源（内容/协同过滤/热门/...）。
// 你可以把它理解为"可并发 fan-out 的策略单元"。
type Source interface {
	Name() string
	Recall(ctx context.Context, rctx *core.RecommendContext) ([]*core.Item, error)
}

// InteractionSource 是召回所需的交互数据读取接口。
// interaction.Store 是内存实现；StoreAdapter 提供基于 core.Store 的外置实现。
type InteractionSource interface {
	// InteractedProducts 返回用户浏览或购买过的去重商品 ID 列表
	InteractedProducts(ctx context.Context, userID string) ([]string, error)

	// UserWeights 返回用户的商品权重行；key 的存在与否表达"是否有过交互"，
	// 未知用户返回空 map
	UserWeights(ctx context.Context, userID string) (map[string]float64, error)

	// AllUsers 返回所有有交互记录的用户
	AllUsers(ctx context.Context) ([]string, error)

	// AllProducts 返回被任何用户交互过的商品并集
	AllProducts(ctx context.Context) ([]string, error)
}

// CatalogSource 是召回所需的商品目录读取接口。
type CatalogSource interface {
	// Products 返回全目录商品 ID（顺序稳定）
	Products(ctx context.Context) ([]string, error)

	// ProductFeatures 返回商品的内容特征；目录中不存在时 ok 为 false
	ProductFeatures(ctx context.Context, productID string) (features map[string]float64, ok bool, err error)
}
