package core

import "github.com/Dextersathya/ecommerce-recommendation/pkg/utils"

// RecommendContext 承载一次推荐请求的用户/场景信息，贯穿召回、过滤、重排透传。
type RecommendContext struct {
	UserID string // 使用 string 类型（通用，支持所有 ID 格式）
	Scene  string // 场景：home / detail / cart 等，由调用方自定义

	// N 是本次请求的结果数量预算
	N int

	// Labels 是用户级标签，可驱动整个链路行为
	Labels map[string]utils.Label

	// Params 请求级上下文参数（device_type、query 等，按需透传）
	Params map[string]any
}

// PutLabel 写入用户级 Label。
func (rctx *RecommendContext) PutLabel(key string, lbl utils.Label) {
	if rctx.Labels == nil {
		rctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := rctx.Labels[key]; ok {
		rctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	rctx.Labels[key] = lbl
}

// GetLabel 获取用户级 Label。
func (rctx *RecommendContext) GetLabel(key string) (utils.Label, bool) {
	if rctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := rctx.Labels[key]
	return lbl, ok
}
