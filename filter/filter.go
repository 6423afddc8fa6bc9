// Package filter 提供商品过滤：facet 谓词（颜色/价格/类目）与 CEL 表达式规则。
package filter

import (
	"context"

	"github.com/voguesphere/stylekit/core"
)

// Filter 是过滤器的抽象接口，用于判断一个商品是否应该被过滤掉。
// 返回 true 表示应该过滤（移除），false 表示保留。
type Filter interface {
	// Name 返回过滤器名称
	Name() string

	// ShouldFilter 判断商品是否应该被过滤
	ShouldFilter(ctx context.Context, rctx *core.RecommendContext, p *core.Product) (bool, error)
}
