// Package builders 在 init 中把内置 Node 注册进 config 的构建注册表。
// 入口处 import _ "github.com/voguesphere/stylekit/config/builders" 即可启用配置驱动。
package builders

import (
	"fmt"
	"math/rand"

	"github.com/voguesphere/stylekit/catalog"
	"github.com/voguesphere/stylekit/config"
	"github.com/voguesphere/stylekit/filter"
	"github.com/voguesphere/stylekit/pipeline"
	"github.com/voguesphere/stylekit/pkg/conv"
	"github.com/voguesphere/stylekit/rank"
	"github.com/voguesphere/stylekit/rerank"
)

func init() {
	config.Register("filter.facets", BuildFacetsNode)
	config.Register("filter.expr", BuildExprNode)
	config.Register("rank.signal", BuildSignalNode)
	config.Register("rerank.topn", BuildTopNNode)
	config.Register("rerank.diversity", BuildDiversityNode)
}

// RegisterCatalog 把 "recall.catalog" 绑定到一个已构建好的目录缓存。
// 目录召回需要 Store 等运行期依赖，无法从纯配置构建，由集成方在装配时注入。
func RegisterCatalog(cache *catalog.Cache) {
	config.Register("recall.catalog", func(map[string]interface{}) (pipeline.Node, error) {
		return &catalog.Node{Cache: cache}, nil
	})
}

// BuildFacetsNode 构建三 facet 过滤 Node；可选 exprs 追加 CEL 屏蔽规则。
func BuildFacetsNode(cfg map[string]interface{}) (pipeline.Node, error) {
	node := filter.NewFacetsNode()
	for _, expr := range conv.SliceAnyToString(cfg["exprs"]) {
		f, err := filter.NewExpressionFilter(expr)
		if err != nil {
			return nil, fmt.Errorf("compile expr %q: %w", expr, err)
		}
		node.Filters = append(node.Filters, f)
	}
	return node, nil
}

func BuildExprNode(cfg map[string]interface{}) (pipeline.Node, error) {
	expr := conv.ConfigGet(cfg, "expr", "")
	if expr == "" {
		return nil, fmt.Errorf("expr not found")
	}
	f, err := filter.NewExpressionFilter(expr)
	if err != nil {
		return nil, err
	}
	return &filter.Node{Filters: []filter.Filter{f}}, nil
}

func BuildSignalNode(cfg map[string]interface{}) (pipeline.Node, error) {
	r := &rank.Ranker{
		Limit: int(conv.ConfigGetInt64(cfg, "limit", 0)),
	}
	if seed := conv.ConfigGetInt64(cfg, "seed", 0); seed != 0 {
		r.Rand = rand.New(rand.NewSource(seed))
	}
	return &rank.SignalNode{Ranker: r}, nil
}

func BuildTopNNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &rerank.TopNNode{N: int(conv.ConfigGetInt64(cfg, "n", 0))}, nil
}

func BuildDiversityNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &rerank.Diversity{
		MaxPerBrand: int(conv.ConfigGetInt64(cfg, "max_per_brand", 0)),
	}, nil
}
