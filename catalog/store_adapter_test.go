package catalog

import (
	"context"
	"testing"

	"github.com/Dextersathya/ecommerce-recommendation/store"
)

func TestStoreAdapter_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	defer kv.Close()

	src := New()
	src.Add("A", map[string]float64{"cat": 0.8, "price": 0.6})
	src.Add("B", map[string]float64{"cat": 0.2})

	adapter := NewStoreAdapter(kv, "")
	if err := adapter.Save(ctx, src); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	dst := New()
	n, err := adapter.Load(ctx, dst)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Load() = %d products, want 2", n)
	}

	features, ok := dst.Features("A")
	if !ok {
		t.Fatal("product A missing after load")
	}
	if features["cat"] != 0.8 || features["price"] != 0.6 {
		t.Errorf("A features = %v", features)
	}
}

func TestStoreAdapter_LoadEmptyStore(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	defer kv.Close()

	adapter := NewStoreAdapter(kv, "catalog:features")
	dst := New()
	n, err := adapter.Load(ctx, dst)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if n != 0 || dst.Len() != 0 {
		t.Errorf("Load() = %d, catalog Len() = %d, want 0/0", n, dst.Len())
	}
}
