package filter

import (
	"context"

	"github.com/voguesphere/stylekit/core"
	"github.com/voguesphere/stylekit/facet"
)

// ColorFilter 按单一颜色过滤：选中颜色必须出现在商品的派生颜色集中。
// 未选颜色时放行所有商品。
type ColorFilter struct{}

func (f *ColorFilter) Name() string { return "filter.color" }

func (f *ColorFilter) ShouldFilter(_ context.Context, rctx *core.RecommendContext, p *core.Product) (bool, error) {
	sel := rctx.GetSelection()
	if sel.Color == "" {
		return false, nil
	}
	return !p.HasColor(sel.Color), nil
}

// PriceFilter 按价格区间过滤。价格解析失败的商品在任一激活的价格筛选下
// 都会被过滤掉（既不算 low 也不算 high），解析永不抛错。
type PriceFilter struct{}

func (f *PriceFilter) Name() string { return "filter.price" }

func (f *PriceFilter) ShouldFilter(_ context.Context, rctx *core.RecommendContext, p *core.Product) (bool, error) {
	sel := rctx.GetSelection()
	if sel.PriceRange == "" {
		return false, nil
	}
	return !facet.MatchPriceRange(p.Price, sel.PriceRange), nil
}

// ClothingTypeFilter 按服装类目过滤：商品原始标签集必须（大小写不敏感地）
// 含有该类目关键词表中的某个成员——是成员判断，不是子串。
type ClothingTypeFilter struct{}

func (f *ClothingTypeFilter) Name() string { return "filter.clothing" }

func (f *ClothingTypeFilter) ShouldFilter(_ context.Context, rctx *core.RecommendContext, p *core.Product) (bool, error) {
	sel := rctx.GetSelection()
	if sel.ClothingType == "" {
		return false, nil
	}
	return !facet.MatchClothingType(p.Labels, sel.ClothingType), nil
}

// Facets 返回三个 facet 过滤器（颜色、价格、类目），组合进 Node 即是 AND 谓词。
func Facets() []Filter {
	return []Filter{
		&ColorFilter{},
		&PriceFilter{},
		&ClothingTypeFilter{},
	}
}

// Apply 是 facet 过滤的纯函数形态：对目录快照应用筛选状态，返回新切片。
// 与 Ranker 是同一目录上的两条独立查询路径，本身不做组合；
// 需要叠加时由调用方把一个的输出作为另一个的输入。
func Apply(catalog []*core.Product, sel core.Selection) []*core.Product {
	out := make([]*core.Product, 0, len(catalog))
	for _, p := range catalog {
		if p == nil {
			continue
		}
		if sel.Color != "" && !p.HasColor(sel.Color) {
			continue
		}
		if sel.PriceRange != "" && !facet.MatchPriceRange(p.Price, sel.PriceRange) {
			continue
		}
		if sel.ClothingType != "" && !facet.MatchClothingType(p.Labels, sel.ClothingType) {
			continue
		}
		out = append(out, p)
	}
	return out
}
