package recall

import (
	"context"
	"math"
	"testing"

	"github.com/Dextersathya/ecommerce-recommendation/core"
	"github.com/Dextersathya/ecommerce-recommendation/interaction"
)

func TestUserCF_SingleUserHasNoNeighbors(t *testing.T) {
	ctx := context.Background()
	s := interaction.NewStore()
	s.Record(ctx, "alice", "p1", core.InteractionView)

	r := &UserCF{Interactions: s}
	items, err := r.Recall(ctx, &core.RecommendContext{UserID: "alice", N: 5})
	if err != nil {
		t.Fatalf("Recall() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Recall() = %v, want empty without neighbors", items)
	}
}

func TestUserCF_NoHistoryIsEmpty(t *testing.T) {
	ctx := context.Background()
	s := interaction.NewStore()
	s.Record(ctx, "bob", "p1", core.InteractionView)

	r := &UserCF{Interactions: s}
	items, err := r.Recall(ctx, &core.RecommendContext{UserID: "alice", N: 5})
	if err != nil {
		t.Fatalf("Recall() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Recall() = %v, want empty for user without entries", items)
	}
}

func TestUserCF_NeighborAggregation(t *testing.T) {
	ctx := context.Background()
	s := interaction.NewStore()
	// alice 与 bob 在 p1 上重叠，bob 额外购买过 p2
	s.Record(ctx, "alice", "p1", core.InteractionView)
	s.Record(ctx, "bob", "p1", core.InteractionView)
	s.Record(ctx, "bob", "p2", core.InteractionPurchase)

	r := &UserCF{Interactions: s}
	items, err := r.Recall(ctx, &core.RecommendContext{UserID: "alice", N: 5})
	if err != nil {
		t.Fatalf("Recall() error = %v", err)
	}
	if len(items) != 1 || items[0].ID != "p2" {
		t.Fatalf("Recall() = %v, want [p2]", items)
	}

	// sim(alice,bob) = 0.25 / (0.5 * sqrt(0.25+4)), score = sim * 2.0
	sim := 0.25 / (0.5 * math.Sqrt(4.25))
	if math.Abs(items[0].Score-sim*2.0) > 1e-9 {
		t.Errorf("score = %v, want %v", items[0].Score, sim*2.0)
	}
	if lbl := items[0].Labels["recall_source"]; lbl.Value != "cf" {
		t.Errorf("recall_source = %q, want cf", lbl.Value)
	}
}

func TestUserCF_ExcludesInteractedByEntryPresence(t *testing.T) {
	ctx := context.Background()
	s := interaction.NewStore()
	s.Record(ctx, "alice", "p1", core.InteractionView)
	s.Record(ctx, "alice", "p2", core.InteractionView) // 有条目 ⇒ 永不再推荐
	s.Record(ctx, "bob", "p1", core.InteractionView)
	s.Record(ctx, "bob", "p2", core.InteractionPurchase)
	s.Record(ctx, "bob", "p3", core.InteractionView)

	r := &UserCF{Interactions: s}
	items, err := r.Recall(ctx, &core.RecommendContext{UserID: "alice", N: 10})
	if err != nil {
		t.Fatalf("Recall() error = %v", err)
	}
	for _, it := range items {
		if it.ID == "p1" || it.ID == "p2" {
			t.Errorf("interacted product %s recommended", it.ID)
		}
	}
	if len(items) != 1 || items[0].ID != "p3" {
		t.Errorf("Recall() = %v, want [p3]", items)
	}
}

func TestUserCF_TopKSimilarUsersCap(t *testing.T) {
	ctx := context.Background()
	s := interaction.NewStore()
	s.Record(ctx, "alice", "p1", core.InteractionView)
	// carol 与 alice 完全同向（最相似），dave 只有不重叠商品（相似度 0）
	s.Record(ctx, "carol", "p1", core.InteractionPurchase)
	s.Record(ctx, "carol", "pc", core.InteractionView)
	s.Record(ctx, "dave", "pd", core.InteractionPurchase)

	r := &UserCF{Interactions: s, TopKSimilarUsers: 1}
	items, err := r.Recall(ctx, &core.RecommendContext{UserID: "alice", N: 10})
	if err != nil {
		t.Fatalf("Recall() error = %v", err)
	}
	// 只保留 carol 一个邻居，dave 的 pd 不应出现
	if len(items) != 1 || items[0].ID != "pc" {
		t.Errorf("Recall() = %v, want [pc] from the single retained neighbor", items)
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b map[string]float64
		want float64
	}{
		{
			name: "identical vectors",
			a:    map[string]float64{"x": 1, "y": 2},
			b:    map[string]float64{"x": 1, "y": 2},
			want: 1.0,
		},
		{
			name: "no shared keys",
			a:    map[string]float64{"x": 1},
			b:    map[string]float64{"y": 1},
			want: 0,
		},
		{
			name: "zero vector",
			a:    map[string]float64{},
			b:    map[string]float64{"x": 1},
			want: 0,
		},
		{
			name: "explicit zero weights",
			a:    map[string]float64{"x": 0},
			b:    map[string]float64{"x": 1},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cosineSimilarity(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("cosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}
