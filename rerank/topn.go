package rerank

import (
	"context"

	"github.com/voguesphere/stylekit/core"
	"github.com/voguesphere/stylekit/pipeline"
)

// TopNNode 是一个 Top-N 截断节点，用于在排序后截取前 N 个商品。
// 通常放在排序（Rank）节点之后，控制返回结果数量。
//
// 示例：
//
//	p := &pipeline.Pipeline{
//	    Nodes: []pipeline.Node{
//	        &rank.SignalNode{...},      // 信号打分排序
//	        &rerank.TopNNode{N: 12},    // 截取 Top 12
//	        &rerank.Diversity{},        // 品牌多样性重排
//	    },
//	}
type TopNNode struct {
	// N 要保留的商品数量（Top N）
	// 如果 N <= 0，则返回所有商品（不截断）
	// 如果 N > len(products)，则返回所有商品
	N int
}

func (n *TopNNode) Name() string {
	return "rerank.topn"
}

func (n *TopNNode) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *TopNNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	products []*core.Product,
) ([]*core.Product, error) {
	if n.N <= 0 {
		return products, nil
	}
	if len(products) <= n.N {
		return products, nil
	}
	return products[:n.N], nil
}
