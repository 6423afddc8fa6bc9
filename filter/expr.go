package filter

import (
	"context"

	"github.com/voguesphere/stylekit/core"
	"github.com/voguesphere/stylekit/pkg/dsl"
)

// ExpressionFilter 是 CEL 表达式驱动的屏蔽规则：表达式命中的商品被过滤掉。
// 适合运营侧临时下架类规则，例如 `"saree" in product.labels && product.brand == "Batik"`。
type ExpressionFilter struct {
	expr string
	eval *dsl.Eval
}

// NewExpressionFilter 编译屏蔽表达式；编译失败立即报错，不留到请求期。
func NewExpressionFilter(expr string) (*ExpressionFilter, error) {
	eval, err := dsl.NewEval(expr)
	if err != nil {
		return nil, err
	}
	return &ExpressionFilter{expr: expr, eval: eval}, nil
}

func (f *ExpressionFilter) Name() string { return "filter.expr" }

// ShouldFilter 表达式求值为 true 时过滤该商品；求值错误交由 Node 跳过处理。
func (f *ExpressionFilter) ShouldFilter(_ context.Context, rctx *core.RecommendContext, p *core.Product) (bool, error) {
	return f.eval.Matches(p, rctx)
}
