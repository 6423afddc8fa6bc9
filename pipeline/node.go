package pipeline

import (
	"context"

	"github.com/voguesphere/stylekit/core"
)

// Kind 用于标记 Node 类型，方便观测/治理/编排（例如按阶段打点）。
type Kind string

const (
	KindRecall      Kind = "recall"      // 召回阶段：产出候选商品集（目录快照）
	KindFilter      Kind = "filter"      // 过滤阶段：剔除不符合筛选条件的商品
	KindRank        Kind = "rank"        // 排序阶段：按聚合信号打分并排序
	KindReRank      Kind = "rerank"      // 重排阶段：在排序结果上做截断/多样性调优
	KindPostProcess Kind = "postprocess" // 后处理阶段：补充字段或最终结果修饰
)

// Node 是 Pipeline 的最小可扩展单元。
// 统一采用“输入 products -> 输出 products”的形态，方便召回生成、过滤截断、重排等操作。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		rctx *core.RecommendContext,
		products []*core.Product,
	) ([]*core.Product, error)
}
