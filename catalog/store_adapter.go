package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Dextersathya/ecommerce-recommendation/core"
)

// StoreAdapter 把商品特征存进 core.KeyValueStore 的 Hash 结构，
// 用于多实例共享目录（如 Redis）。
// 每个商品一个 field，value 为 JSON 编码的特征向量。
type StoreAdapter struct {
	store core.KeyValueStore

	// Key 是 Hash 的 key，默认 "catalog:features"
	Key string
}

func NewStoreAdapter(s core.KeyValueStore, key string) *StoreAdapter {
	if key == "" {
		key = "catalog:features"
	}
	return &StoreAdapter{store: s, Key: key}
}

// Save 将内存目录整体写入 Store。
func (a *StoreAdapter) Save(ctx context.Context, c *Catalog) error {
	var saveErr error
	c.Range(func(productID string, features map[string]float64) bool {
		data, err := json.Marshal(features)
		if err != nil {
			saveErr = fmt.Errorf("marshal features for %s: %w", productID, err)
			return false
		}
		if err := a.store.HSet(ctx, a.Key, productID, data); err != nil {
			saveErr = fmt.Errorf("hset %s: %w", productID, err)
			return false
		}
		return true
	})
	return saveErr
}

// Load 从 Store 读出全部商品特征并注册进目录。
// 返回加载的商品数量。
func (a *StoreAdapter) Load(ctx context.Context, c *Catalog) (int, error) {
	rows, err := a.store.HGetAll(ctx, a.Key)
	if err != nil {
		if core.IsStoreNotFound(err) {
			return 0, nil
		}
		return 0, err
	}

	n := 0
	for productID, data := range rows {
		var features map[string]float64
		if err := json.Unmarshal(data, &features); err != nil {
			return n, fmt.Errorf("unmarshal features for %s: %w", productID, err)
		}
		c.Add(productID, features)
		n++
	}
	return n, nil
}
