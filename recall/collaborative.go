package recall

import (
	"context"
	"math"
	"sort"

	"github.com/Dextersathya/ecommerce-recommendation/core"
	"github.com/Dextersathya/ecommerce-recommendation/pkg/utils"
)

// UserCF 是基于用户的协同过滤召回源（User-based Collaborative Filtering, User-CF）。
//
// 核心思想："兴趣相似的用户，喜欢相似的商品"
//
// 算法流程：
//  1. 目标用户没有任何矩阵条目 → 返回空
//  2. 以所有有交互的用户为行、全体被交互商品的并集为列展开权重矩阵，
//     缺失条目为 0
//  3. 计算目标用户与其余每个用户的余弦相似度（零向量的余弦定义为 0）
//  4. 相似度降序取前 TopKSimilarUsers（默认 10）个邻居
//  5. 对每个邻居的每个商品：目标用户完全没有条目的（注意是条目缺失，
//     不是权重为 0），累加 邻居相似度 × 邻居权重
//  6. 聚合分降序，返回 TopK
//
// 边界：矩阵中只有目标用户一人时没有可比较的邻居，返回空。
type UserCF struct {
	Interactions InteractionSource

	// TopKSimilarUsers 参与聚合的相似用户数，默认 10
	TopKSimilarUsers int

	// TopK 在 rctx.N 未给出预算时的默认返回数量
	TopK int
}

func (r *UserCF) Name() string {
	return "recall.cf" // 工业标准命名：u2i (User-to-Item)
}

func (r *UserCF) Recall(
	ctx context.Context,
	rctx *core.RecommendContext,
) ([]*core.Item, error) {
	if r.Interactions == nil || rctx == nil || rctx.UserID == "" {
		return nil, nil
	}

	targetWeights, err := r.Interactions.UserWeights(ctx, rctx.UserID)
	if err != nil {
		return nil, err
	}
	if len(targetWeights) == 0 {
		return nil, nil
	}

	allUsers, err := r.Interactions.AllUsers(ctx)
	if err != nil {
		return nil, err
	}
	allProducts, err := r.Interactions.AllProducts(ctx)
	if err != nil {
		return nil, err
	}

	// 计算每个其他用户与目标用户的相似度
	type neighbor struct {
		userID     string
		similarity float64
		weights    map[string]float64
	}
	neighbors := make([]neighbor, 0, len(allUsers))

	for _, userID := range allUsers {
		if userID == rctx.UserID {
			continue // 跳过自己
		}
		weights, err := r.Interactions.UserWeights(ctx, userID)
		if err != nil {
			return nil, err
		}
		neighbors = append(neighbors, neighbor{
			userID:     userID,
			similarity: cosineSimilarity(targetWeights, weights),
			weights:    weights,
		})
	}

	if len(neighbors) == 0 {
		return nil, nil // 只有目标用户一人
	}

	// 相似度降序取 TopK 邻居；并列保持用户出现顺序
	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].similarity > neighbors[j].similarity
	})
	topSimilar := r.TopKSimilarUsers
	if topSimilar <= 0 {
		topSimilar = 10
	}
	if len(neighbors) > topSimilar {
		neighbors = neighbors[:topSimilar]
	}

	// 聚合邻居偏好：score[product] = Σ(similarity * weight)
	// 只聚合目标用户从未交互过的商品（按条目缺失判断）
	aggregate := make(map[string]float64)
	order := make([]string, 0)
	for _, nb := range neighbors {
		// 按全局商品顺序遍历，保证聚合结果顺序稳定
		for _, productID := range allProducts {
			weight, ok := nb.weights[productID]
			if !ok {
				continue
			}
			if _, interacted := targetWeights[productID]; interacted {
				continue
			}
			if _, seen := aggregate[productID]; !seen {
				order = append(order, productID)
			}
			aggregate[productID] += nb.similarity * weight
		}
	}

	// 聚合分降序；并列保持首次出现顺序
	sort.SliceStable(order, func(i, j int) bool {
		return aggregate[order[i]] > aggregate[order[j]]
	})

	topK := rctx.N
	if topK <= 0 {
		topK = r.TopK
	}
	if topK <= 0 {
		topK = 20
	}
	if len(order) > topK {
		order = order[:topK]
	}

	out := make([]*core.Item, 0, len(order))
	for _, productID := range order {
		it := core.NewItem(productID)
		it.Score = aggregate[productID]
		it.PutLabel("recall_source", utils.Label{Value: "cf", Source: "recall"})
		out = append(out, it)
	}

	return out, nil
}

// cosineSimilarity 计算两个稀疏权重向量的余弦相似度。
// 任一侧为零向量时定义为 0，而不是报错。
func cosineSimilarity(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for _, v := range a {
		normA += v * v
	}
	for _, v := range b {
		normB += v * v
	}
	for k, va := range a {
		if vb, ok := b[k]; ok {
			dot += va * vb
		}
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
