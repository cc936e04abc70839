// Package recommendation 是一个电商混合推荐引擎。
//
// 设计要点：
// - 双路召回：基于内容的特征相似 + 基于用户的协同过滤，按下标交替合并
// - 写驱动失效：record 交互即失效该用户全部 (user, n) 缓存条目，读时惰性过期
// - Pipeline 可组合：召回/过滤/重排都是 Node，可插拔扩展
package recommendation

import "github.com/Dextersathya/ecommerce-recommendation/pipeline"

// 轻量 facade：便于用户直接 import 根包使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindRecall      = pipeline.KindRecall
	KindFilter      = pipeline.KindFilter
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)
