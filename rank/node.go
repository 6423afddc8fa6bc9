package rank

import (
	"context"

	"github.com/voguesphere/stylekit/core"
	"github.com/voguesphere/stylekit/pipeline"
)

// SignalNode 是信号排序 Node：用 rctx 中的聚合信号驱动 Ranker。
// 输入通常是 recall.catalog 产出的请求级商品快照；输出已按分数截断，
// 无正分命中时走 Ranker 的随机兜底。
type SignalNode struct {
	Ranker *Ranker // nil 时使用零值 Ranker（默认层表、默认截断）
}

func (n *SignalNode) Name() string        { return "rank.signal" }
func (n *SignalNode) Kind() pipeline.Kind { return pipeline.KindRank }

func (n *SignalNode) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	products []*core.Product,
) ([]*core.Product, error) {
	r := n.Ranker
	if r == nil {
		r = &Ranker{}
	}
	return r.Rank(products, rctx.GetSignal()), nil
}
