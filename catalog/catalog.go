// Package catalog 维护商品目录：商品 ID 到内容特征向量的映射。
// 引擎只关心 features；展示元信息（名称、价格、图片等）原样透传给调用方。
package catalog

import (
	"github.com/Dextersathya/ecommerce-recommendation/pkg/conv"
)

// Catalog 是内存商品目录。
//
// 约束：
//   - 特征值在注册时显式 clamp 到 [0,1]，而不是在使用处动态纠偏
//   - 同一商品重复注册时整体覆盖
//   - 遍历顺序 = 注册顺序（保证相同输入下推荐结果可复现）
//
// Catalog 与引擎共享"单一逻辑调用方"模型，不做内部加锁；
// 并发前端需要在外层串行化（见 engine 包说明）。
type Catalog struct {
	ids      []string
	features map[string]map[string]float64
}

func New() *Catalog {
	return &Catalog{
		features: make(map[string]map[string]float64),
	}
}

// Add 注册（或覆盖）一个商品的特征向量。
// 特征值被 clamp 到 [0,1]，返回被 clamp 的特征个数，调用方可据此上报。
func (c *Catalog) Add(productID string, features map[string]float64) int {
	if productID == "" {
		return 0
	}
	clamped := 0
	fs := make(map[string]float64, len(features))
	for name, v := range features {
		switch {
		case v < 0:
			v = 0
			clamped++
		case v > 1:
			v = 1
			clamped++
		}
		fs[name] = v
	}
	if _, ok := c.features[productID]; !ok {
		c.ids = append(c.ids, productID)
	}
	c.features[productID] = fs
	return clamped
}

// AddAny 注册动态类型的特征向量（如 YAML/JSON 解析结果）。
// 非数值的 value 被丢弃，其余走 Add 的 clamp 逻辑。
func (c *Catalog) AddAny(productID string, features map[string]any) int {
	return c.Add(productID, conv.MapToFloat64(features))
}

// Features 返回商品的特征向量。商品不存在时返回 (nil, false)，
// 调用方不应依赖隐式空值。
func (c *Catalog) Features(productID string) (map[string]float64, bool) {
	fs, ok := c.features[productID]
	return fs, ok
}

// Products 返回按注册顺序排列的商品 ID 列表。
func (c *Catalog) Products() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Len 返回商品数量。
func (c *Catalog) Len() int {
	return len(c.ids)
}

// Range 按注册顺序遍历商品，fn 返回 false 时中止。
func (c *Catalog) Range(fn func(productID string, features map[string]float64) bool) {
	for _, id := range c.ids {
		if !fn(id, c.features[id]) {
			return
		}
	}
}
