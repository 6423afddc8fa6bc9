// Package stylekit 是一个穿搭推荐工具包（Style Kit）。
//
// 设计要点：
// - Pipeline-first: 推荐逻辑通过 Node 串联（Recall → Filter → Rank → ReRank）
// - Signal-first: 测验回答聚合为信号集，驱动分层加权排序
// - Node 可扩展: 自定义 Node 即可插拔扩展（facet 过滤、CEL 规则均可）
package stylekit

import "github.com/voguesphere/stylekit/pipeline"

// 轻量 facade：便于用户直接 import "stylekit" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindRecall      = pipeline.KindRecall
	KindFilter      = pipeline.KindFilter
	KindRank        = pipeline.KindRank
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)
