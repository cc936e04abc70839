package rerank

import (
	"context"
	"testing"

	"github.com/Dextersathya/ecommerce-recommendation/core"
)

func TestTopNNode(t *testing.T) {
	items := []*core.Item{
		core.NewItem("a"),
		core.NewItem("b"),
		core.NewItem("c"),
	}

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"truncates to n", 2, 2},
		{"n larger than input", 10, 3},
		{"zero keeps nothing", 0, 0},
		{"negative keeps all", -1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := &TopNNode{N: tt.n}
			got, err := node.Process(context.Background(), nil, items)
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("Process() kept %d items, want %d", len(got), tt.want)
			}
			for i := range got {
				if got[i].ID != items[i].ID {
					t.Errorf("order changed at %d: %s", i, got[i].ID)
				}
			}
		})
	}
}
