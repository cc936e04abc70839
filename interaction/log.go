// Package interaction 维护用户交互数据：只追加的事件日志，
// 以及由日志推导出的用户-商品加权评分矩阵。
package interaction

import (
	"github.com/Dextersathya/ecommerce-recommendation/core"
)

// Log 是按用户组织的交互事件日志。
// 每个用户维护 views / purchases 两个有序事件序列，保留插入顺序，
// 允许重复（重复浏览会累积多条事件）。事件只追加，不修改、不删除，
// 进程生命周期内无限增长（有界内存是显式的非目标）。
type Log struct {
	users   []string
	entries map[string]*userLog
}

type userLog struct {
	views     []core.InteractionEvent
	purchases []core.InteractionEvent
}

func NewLog() *Log {
	return &Log{
		entries: make(map[string]*userLog),
	}
}

// Append 追加一条事件。未知行为类型在上层已经被拦截，
// 这里只按 Kind 分流。
func (l *Log) Append(ev core.InteractionEvent) {
	ul, ok := l.entries[ev.UserID]
	if !ok {
		ul = &userLog{}
		l.entries[ev.UserID] = ul
		l.users = append(l.users, ev.UserID)
	}
	switch ev.Kind {
	case core.InteractionView:
		ul.views = append(ul.views, ev)
	case core.InteractionPurchase:
		ul.purchases = append(ul.purchases, ev)
	}
}

// Views 返回用户的浏览事件序列（副本）。未知用户返回空切片。
func (l *Log) Views(userID string) []core.InteractionEvent {
	ul, ok := l.entries[userID]
	if !ok {
		return nil
	}
	out := make([]core.InteractionEvent, len(ul.views))
	copy(out, ul.views)
	return out
}

// Purchases 返回用户的购买事件序列（副本）。未知用户返回空切片。
func (l *Log) Purchases(userID string) []core.InteractionEvent {
	ul, ok := l.entries[userID]
	if !ok {
		return nil
	}
	out := make([]core.InteractionEvent, len(ul.purchases))
	copy(out, ul.purchases)
	return out
}

// InteractedProducts 返回用户浏览或购买过的去重商品 ID 列表，
// 按首次交互顺序排列（浏览序列在前）。
func (l *Log) InteractedProducts(userID string) []string {
	ul, ok := l.entries[userID]
	if !ok {
		return nil
	}
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, ev := range ul.views {
		if _, dup := seen[ev.ProductID]; dup {
			continue
		}
		seen[ev.ProductID] = struct{}{}
		out = append(out, ev.ProductID)
	}
	for _, ev := range ul.purchases {
		if _, dup := seen[ev.ProductID]; dup {
			continue
		}
		seen[ev.ProductID] = struct{}{}
		out = append(out, ev.ProductID)
	}
	return out
}

// Users 返回有过任意交互的用户列表，按首次出现顺序排列。
func (l *Log) Users() []string {
	out := make([]string, len(l.users))
	copy(out, l.users)
	return out
}
