package recall

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Dextersathya/ecommerce-recommendation/core"
	"github.com/Dextersathya/ecommerce-recommendation/pipeline"
)

// Hybrid 是一个 Recall Node：并发执行内容召回与协同过滤召回，
// 按下标交替合并两个有序候选列表。
//
// 合并规则（保留既定语义，勿改）：
//   - 逐下标 i 走两个列表：先看 content[i]，未出过就输出；
//     再看 collaborative[i]，未出过就输出
//   - 输出数量一到 rctx.N 立即停止 —— 停止可能发生在一步中间，
//     即最后一步的 collaborative[i] 可能被跳过
//   - 不从目录回填：两个列表都耗尽时结果可以不足 N
type Hybrid struct {
	Content       Source
	Collaborative Source
}

func (n *Hybrid) Name() string        { return "recall.hybrid" }
func (n *Hybrid) Kind() pipeline.Kind { return pipeline.KindRecall }

func (n *Hybrid) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	if rctx == nil {
		return nil, nil
	}

	var content, collaborative []*core.Item

	// 两路召回相互独立，并发执行后在本调用内汇合，
	// 对调用方仍然是同步的请求-响应
	eg, egCtx := errgroup.WithContext(ctx)
	if n.Content != nil {
		eg.Go(func() error {
			items, err := n.Content.Recall(egCtx, rctx)
			if err != nil {
				return err
			}
			content = items
			return nil
		})
	}
	if n.Collaborative != nil {
		eg.Go(func() error {
			items, err := n.Collaborative.Recall(egCtx, rctx)
			if err != nil {
				return err
			}
			collaborative = items
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return interleave(content, collaborative, rctx.N), nil
}

// interleave 按下标交替合并，去重，数量到达 budget 立即停止。
// budget <= 0 表示不限量（由下游 TopN 截断）。
func interleave(content, collaborative []*core.Item, budget int) []*core.Item {
	maxLen := len(content)
	if len(collaborative) > maxLen {
		maxLen = len(collaborative)
	}

	seen := make(map[string]struct{}, maxLen*2)
	out := make([]*core.Item, 0, maxLen)

	full := func() bool {
		return budget > 0 && len(out) >= budget
	}

	for i := 0; i < maxLen; i++ {
		if i < len(content) {
			if it := content[i]; it != nil {
				if _, dup := seen[it.ID]; !dup {
					out = append(out, it)
					seen[it.ID] = struct{}{}
				}
			}
		}
		if full() {
			break
		}
		if i < len(collaborative) {
			if it := collaborative[i]; it != nil {
				if _, dup := seen[it.ID]; !dup {
					out = append(out, it)
					seen[it.ID] = struct{}{}
				}
			}
		}
		if full() {
			break
		}
	}

	if budget > 0 && len(out) > budget {
		out = out[:budget]
	}
	return out
}
