package rerank

import (
	"context"

	"github.com/voguesphere/stylekit/core"
	"github.com/voguesphere/stylekit/pipeline"
)

// Diversity 是一个品牌多样性 ReRank 节点：限制同一品牌在结果中的出现次数，
// 保留得分序中先出现的商品。没有品牌标识的商品不受限制。
type Diversity struct {
	// MaxPerBrand 每个品牌最多保留的商品数，<= 0 时取 1。
	MaxPerBrand int
}

func (n *Diversity) Name() string {
	return "rerank.diversity"
}

func (n *Diversity) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *Diversity) Process(
	_ context.Context,
	_ *core.RecommendContext,
	products []*core.Product,
) ([]*core.Product, error) {
	if len(products) == 0 {
		return products, nil
	}

	limit := n.MaxPerBrand
	if limit <= 0 {
		limit = 1
	}

	seen := make(map[string]int, 16)
	out := make([]*core.Product, 0, len(products))

	for _, p := range products {
		if p == nil {
			continue
		}
		if p.Brand == "" {
			out = append(out, p)
			continue
		}
		if seen[p.Brand] >= limit {
			continue
		}
		seen[p.Brand]++
		out = append(out, p)
	}

	return out, nil
}
