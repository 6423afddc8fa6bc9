package filter

import (
	"context"

	"github.com/voguesphere/stylekit/core"
	"github.com/voguesphere/stylekit/pipeline"
)

// Node 是过滤 Node，可以组合多个过滤器。
// 任何一个过滤器返回 true，该商品就会被过滤掉（AND 语义：全部放行才保留）。
type Node struct {
	Filters []Filter
}

// NewFacetsNode 构建承载三个 facet 过滤器的 Node，对应 discover 浏览视图：
// 过滤状态从 rctx.Selection 读取，每次筛选变化重跑一遍即可。
func NewFacetsNode() *Node {
	return &Node{Filters: Facets()}
}

func (n *Node) Name() string {
	return "filter.node"
}

func (n *Node) Kind() pipeline.Kind {
	return pipeline.KindFilter
}

func (n *Node) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	products []*core.Product,
) ([]*core.Product, error) {
	if len(n.Filters) == 0 || len(products) == 0 {
		return products, nil
	}

	out := make([]*core.Product, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}

		keep := true
		for _, f := range n.Filters {
			drop, err := f.ShouldFilter(ctx, rctx, p)
			if err != nil {
				// 过滤器错误时跳过该过滤器，不中断流程
				continue
			}
			if drop {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, p)
		}
	}

	return out, nil
}
