package recall

import (
	"context"
	"sort"

	"github.com/Dextersathya/ecommerce-recommendation/core"
	"github.com/Dextersathya/ecommerce-recommendation/pkg/utils"
)

// Content 是基于内容的召回源（Content-Based Recommendation）。
//
// 核心思想："用户喜欢某些特征的商品，推荐特征相近的其他商品"
//
// 算法流程：
//  1. 取用户浏览/购买过的去重商品集合（不按频次加权）
//  2. 集合为空 → 冷启动，返回空
//  3. 构建用户画像向量：对每个出现过的特征名求和后除以去重商品数
//     （特征缺失的商品对该特征贡献 0，分母不变 —— 稀疏平均）
//  4. 对每个未交互过的目录商品，取画像与商品的公共特征，
//     累加绝对差，相似度 = 1/(1+总差)。只在一侧出现的特征忽略不罚分。
//     注意：与画像零特征重叠的商品差为 0，相似度为 1.0 —— 这是既定
//     边界语义，特征不相交的商品可能排到最前，必须原样保留
//  5. 按相似度降序（并列保持目录顺序），返回 TopK
type Content struct {
	Catalog      CatalogSource
	Interactions InteractionSource

	// TopK 在 rctx.N 未给出预算时的默认返回数量
	TopK int
}

func (r *Content) Name() string {
	return "recall.content"
}

func (r *Content) Recall(
	ctx context.Context,
	rctx *core.RecommendContext,
) ([]*core.Item, error) {
	if r.Catalog == nil || r.Interactions == nil || rctx == nil || rctx.UserID == "" {
		return nil, nil
	}

	interacted, err := r.Interactions.InteractedProducts(ctx, rctx.UserID)
	if err != nil {
		return nil, err
	}
	if len(interacted) == 0 {
		return nil, nil // 冷启动：没有内容信号
	}

	interactedSet := make(map[string]struct{}, len(interacted))
	for _, id := range interacted {
		interactedSet[id] = struct{}{}
	}

	// 构建用户画像：特征求和
	profile := make(map[string]float64)
	for _, id := range interacted {
		features, ok, err := r.Catalog.ProductFeatures(ctx, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue // 目录外的交互商品仍计入分母
		}
		for name, v := range features {
			profile[name] += v
		}
	}

	// 归一化：除以去重交互商品数
	total := float64(len(interacted))
	for name := range profile {
		profile[name] /= total
	}

	// 对所有未交互的目录商品计算相似度
	allProducts, err := r.Catalog.Products(ctx)
	if err != nil {
		return nil, err
	}

	type scoredItem struct {
		productID string
		score     float64
	}
	scores := make([]scoredItem, 0, len(allProducts))

	for _, id := range allProducts {
		if _, ok := interactedSet[id]; ok {
			continue // 不推荐已交互商品
		}
		features, ok, err := r.Catalog.ProductFeatures(ctx, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		scores = append(scores, scoredItem{
			productID: id,
			score:     featureSimilarity(profile, features),
		})
	}

	// 按相似度降序；并列时保持目录顺序
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	topK := rctx.N
	if topK <= 0 {
		topK = r.TopK
	}
	if topK <= 0 {
		topK = 20
	}
	if len(scores) > topK {
		scores = scores[:topK]
	}

	out := make([]*core.Item, 0, len(scores))
	for _, s := range scores {
		it := core.NewItem(s.productID)
		it.Score = s.score
		it.PutLabel("recall_source", utils.Label{Value: "content", Source: "recall"})
		out = append(out, it)
	}

	return out, nil
}

// featureSimilarity 计算画像与商品特征的相似度：
// 公共特征绝对差之和 d，相似度 = 1/(1+d)（把距离转换为相似度）。
func featureSimilarity(profile, features map[string]float64) float64 {
	var diff float64
	for name, pv := range profile {
		if fv, ok := features[name]; ok {
			if pv > fv {
				diff += pv - fv
			} else {
				diff += fv - pv
			}
		}
	}
	return 1.0 / (1.0 + diff)
}
