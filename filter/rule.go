package filter

import (
	"context"

	"github.com/Dextersathya/ecommerce-recommendation/core"
	"github.com/Dextersathya/ecommerce-recommendation/pkg/dsl"
)

// RuleFilter 是规则过滤器：表达式命中的商品被过滤掉。
// 表达式使用 CEL 语法，可访问 item / label / rctx，例如：
//
//	item.score < 0.1
//	label.recall_source == "popular" && rctx.scene == "cart"
type RuleFilter struct {
	// Expr 是 CEL 过滤表达式；为空时不过滤任何商品
	Expr string
}

func (f *RuleFilter) Name() string {
	return "filter.rule"
}

func (f *RuleFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	if f.Expr == "" || item == nil {
		return false, nil
	}

	hit, err := dsl.NewEval(item, rctx).Evaluate(f.Expr)
	if err != nil {
		return false, err
	}
	return hit, nil
}
