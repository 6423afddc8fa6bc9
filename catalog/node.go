package catalog

import (
	"context"

	"github.com/voguesphere/stylekit/core"
	"github.com/voguesphere/stylekit/pipeline"
)

// Node 是目录召回 Node：从缓存取全量快照，产出请求级候选集。
// 输出是商品的浅拷贝，后续 Node（打分写 Score 等）可放心修改，
// 并发请求共享同一缓存快照互不干扰。
type Node struct {
	Cache *Cache
}

func (n *Node) Name() string        { return "recall.catalog" }
func (n *Node) Kind() pipeline.Kind { return pipeline.KindRecall }

func (n *Node) Process(
	ctx context.Context,
	_ *core.RecommendContext,
	_ []*core.Product,
) ([]*core.Product, error) {
	if n.Cache == nil {
		return nil, nil
	}
	snapshot, err := n.Cache.Get(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*core.Product, 0, len(snapshot))
	for _, p := range snapshot {
		out = append(out, p.Clone())
	}
	return out, nil
}
