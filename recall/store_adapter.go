package recall

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Dextersathya/ecommerce-recommendation/core"
	"github.com/Dextersathya/ecommerce-recommendation/interaction"
)

// StoreAdapter 是基于 core.Store 接口的交互数据适配器，实现 InteractionSource。
// 把交互快照放进 Redis/内存 KV 后，召回源可以在引擎进程之外运行。
//
// key 布局：
//   用户权重行：{KeyPrefix}:user:{userID}（JSON map[product]weight）
//   用户交互序列：{KeyPrefix}:seen:{userID}（JSON []productID）
//   所有用户列表：{KeyPrefix}:users
//   所有商品列表：{KeyPrefix}:products
type StoreAdapter struct {
	store core.Store

	// KeyPrefix 是存储 key 的前缀，默认 "cf"
	KeyPrefix string
}

func NewStoreAdapter(s core.Store, keyPrefix string) *StoreAdapter {
	if keyPrefix == "" {
		keyPrefix = "cf"
	}
	return &StoreAdapter{
		store:     s,
		KeyPrefix: keyPrefix,
	}
}

func (a *StoreAdapter) InteractedProducts(ctx context.Context, userID string) ([]string, error) {
	var out []string
	if err := a.getJSON(ctx, a.KeyPrefix+":seen:"+userID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *StoreAdapter) UserWeights(ctx context.Context, userID string) (map[string]float64, error) {
	out := make(map[string]float64)
	if err := a.getJSON(ctx, a.KeyPrefix+":user:"+userID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *StoreAdapter) AllUsers(ctx context.Context) ([]string, error) {
	var out []string
	if err := a.getJSON(ctx, a.KeyPrefix+":users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *StoreAdapter) AllProducts(ctx context.Context) ([]string, error) {
	var out []string
	if err := a.getJSON(ctx, a.KeyPrefix+":products", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// getJSON 读取并解码一个 key；key 不存在时 v 保持零值。
func (a *StoreAdapter) getJSON(ctx context.Context, key string, v any) error {
	data, err := a.store.Get(ctx, key)
	if err != nil {
		if core.IsStoreNotFound(err) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}

var _ InteractionSource = (*StoreAdapter)(nil)

// Export 把内存交互存储的当前快照写入 Store，供外置召回使用。
func (a *StoreAdapter) Export(ctx context.Context, src *interaction.Store) error {
	users := src.Matrix().Users()
	kvs := make(map[string][]byte, len(users)*2+2)

	put := func(key string, v any) error {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", key, err)
		}
		kvs[key] = data
		return nil
	}

	for _, userID := range users {
		if err := put(a.KeyPrefix+":user:"+userID, src.Matrix().UserWeights(userID)); err != nil {
			return err
		}
		if err := put(a.KeyPrefix+":seen:"+userID, src.Log().InteractedProducts(userID)); err != nil {
			return err
		}
	}
	if err := put(a.KeyPrefix+":users", users); err != nil {
		return err
	}
	if err := put(a.KeyPrefix+":products", src.Matrix().Products()); err != nil {
		return err
	}

	return a.store.BatchSet(ctx, kvs)
}
