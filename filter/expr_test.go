package filter

import (
	"context"
	"testing"

	"github.com/voguesphere/stylekit/core"
)

func TestExpressionFilter(t *testing.T) {
	f, err := NewExpressionFilter(`"saree" in product.labels && product.brand == "Batik"`)
	if err != nil {
		t.Fatalf("NewExpressionFilter() error = %v", err)
	}

	rctx := &core.RecommendContext{}
	blocked := &core.Product{Title: "Silk Saree", Brand: "Batik", Labels: []string{"Saree"}}
	allowed := &core.Product{Title: "Silk Saree", Brand: "Khaadi", Labels: []string{"Saree"}}

	if drop, err := f.ShouldFilter(context.Background(), rctx, blocked); err != nil || !drop {
		t.Errorf("ShouldFilter(blocked) = %v, %v; want true, nil", drop, err)
	}
	if drop, err := f.ShouldFilter(context.Background(), rctx, allowed); err != nil || drop {
		t.Errorf("ShouldFilter(allowed) = %v, %v; want false, nil", drop, err)
	}
}

func TestExpressionFilter_CompileError(t *testing.T) {
	if _, err := NewExpressionFilter(`product.labels &&`); err == nil {
		t.Error("NewExpressionFilter() accepted a malformed expression")
	}
}
