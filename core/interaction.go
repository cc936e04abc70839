package core

import "time"

// InteractionKind 是用户行为类型。
// 目前只有 view / purchase 两种；未知类型在记录时被静默忽略
// （定义为 no-op 而非错误，兼容调用方传入的历史行为类型）。
type InteractionKind string

const (
	InteractionView     InteractionKind = "view"     // 浏览
	InteractionPurchase InteractionKind = "purchase" // 购买
)

// Valid 检查行为类型是否为已知类型。
func (k InteractionKind) Valid() bool {
	return k == InteractionView || k == InteractionPurchase
}

// InteractionEvent 是一条用户-商品交互事件。
// 事件只追加、不修改、不删除；重复交互会产生多条事件（权重随之累加）。
type InteractionEvent struct {
	UserID    string
	ProductID string
	Kind      InteractionKind
	Timestamp time.Time
}
