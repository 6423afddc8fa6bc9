package pipeline

import (
	"context"

	"github.com/voguesphere/stylekit/core"
)

// Pipeline 是 stylekit 的核心抽象：把推荐逻辑拆成可组合的 Node 链。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	rctx *core.RecommendContext,
	products []*core.Product,
) ([]*core.Product, error) {
	cur := products
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, rctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
