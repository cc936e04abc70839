package recall

import (
	"context"
	"testing"

	"github.com/Dextersathya/ecommerce-recommendation/core"
	"github.com/Dextersathya/ecommerce-recommendation/interaction"
	"github.com/Dextersathya/ecommerce-recommendation/store"
)

func TestStoreAdapter_ExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := interaction.NewStore()
	src.Record(ctx, "alice", "p1", core.InteractionView)
	src.Record(ctx, "alice", "p1", core.InteractionPurchase)
	src.Record(ctx, "bob", "p2", core.InteractionView)

	mem := store.NewMemoryStore()
	defer mem.Close()

	adapter := NewStoreAdapter(mem, "")
	if err := adapter.Export(ctx, src); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	weights, err := adapter.UserWeights(ctx, "alice")
	if err != nil {
		t.Fatalf("UserWeights() error = %v", err)
	}
	if weights["p1"] != 2.5 {
		t.Errorf("alice p1 weight = %v, want 2.5", weights["p1"])
	}

	seen, err := adapter.InteractedProducts(ctx, "alice")
	if err != nil {
		t.Fatalf("InteractedProducts() error = %v", err)
	}
	if len(seen) != 1 || seen[0] != "p1" {
		t.Errorf("InteractedProducts() = %v, want [p1]", seen)
	}

	users, err := adapter.AllUsers(ctx)
	if err != nil {
		t.Fatalf("AllUsers() error = %v", err)
	}
	if len(users) != 2 || users[0] != "alice" || users[1] != "bob" {
		t.Errorf("AllUsers() = %v, want [alice bob]", users)
	}

	products, err := adapter.AllProducts(ctx)
	if err != nil {
		t.Fatalf("AllProducts() error = %v", err)
	}
	if len(products) != 2 || products[0] != "p1" || products[1] != "p2" {
		t.Errorf("AllProducts() = %v, want [p1 p2]", products)
	}
}

func TestStoreAdapter_MissingKeysAreEmpty(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	defer mem.Close()

	adapter := NewStoreAdapter(mem, "cf")
	weights, err := adapter.UserWeights(ctx, "ghost")
	if err != nil {
		t.Fatalf("UserWeights() error = %v", err)
	}
	if len(weights) != 0 {
		t.Errorf("UserWeights() = %v, want empty", weights)
	}

	users, err := adapter.AllUsers(ctx)
	if err != nil {
		t.Fatalf("AllUsers() error = %v", err)
	}
	if len(users) != 0 {
		t.Errorf("AllUsers() = %v, want empty", users)
	}
}

func TestStoreAdapter_ServesUserCF(t *testing.T) {
	ctx := context.Background()
	src := interaction.NewStore()
	src.Record(ctx, "alice", "p1", core.InteractionView)
	src.Record(ctx, "bob", "p1", core.InteractionView)
	src.Record(ctx, "bob", "p2", core.InteractionPurchase)

	mem := store.NewMemoryStore()
	defer mem.Close()

	adapter := NewStoreAdapter(mem, "cf")
	if err := adapter.Export(ctx, src); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	// 外置快照上的召回结果应与进程内一致
	direct := &UserCF{Interactions: src}
	external := &UserCF{Interactions: adapter}
	rctx := &core.RecommendContext{UserID: "alice", N: 5}

	want, err := direct.Recall(ctx, rctx)
	if err != nil {
		t.Fatalf("direct Recall() error = %v", err)
	}
	got, err := external.Recall(ctx, rctx)
	if err != nil {
		t.Fatalf("external Recall() error = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("external = %v, direct = %v", ids(got), ids(want))
	}
	for i := range got {
		if got[i].ID != want[i].ID || got[i].Score != want[i].Score {
			t.Errorf("item %d: external (%s, %v), direct (%s, %v)",
				i, got[i].ID, got[i].Score, want[i].ID, want[i].Score)
		}
	}
}
