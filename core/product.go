package core

import "strings"

// Product 是推荐链路中的统一承载结构：商品的展示信息、原始标签与派生颜色。
// Labels 是来源侧的自由文本标签（未归一化，可能混合大小写/重复/多词短语）；
// Colors 由 facet 包在入库时一次性派生；Score 仅在单次排序请求内有效，不落盘。
type Product struct {
	Title  string   `json:"title"`
	Price  string   `json:"price"` // 原始价格文本，如 "Rs. 3,500" / "PKR3000"，不可信输入
	Image  string   `json:"image"`
	URL    string   `json:"url"`
	Brand  string   `json:"brand,omitempty"`
	Labels []string `json:"labels"`
	Colors []string `json:"colors,omitempty"` // 派生字段，⊆ facet.ColorVocabulary
	Score  float64  `json:"-"`                // 派生字段，仅单次 Rank 请求内有效
}

// Clone 返回 Product 的浅拷贝。
// 目录缓存是进程级只读快照，任何要写 Score 的链路（Rank）必须先 Clone，
// 保证并发请求之间互不干扰。Labels/Colors 切片只读共享，不复制。
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Score = 0
	return &cp
}

// NormLabels 返回小写化、去首尾空白后的标签列表。
// 纯函数：不修改原始 Labels。
func (p *Product) NormLabels() []string {
	if len(p.Labels) == 0 {
		return nil
	}
	out := make([]string, 0, len(p.Labels))
	for _, l := range p.Labels {
		out = append(out, strings.ToLower(strings.TrimSpace(l)))
	}
	return out
}

// HasLabel 判断归一化标签集中是否存在与 label 完全相等的标签。
func (p *Product) HasLabel(label string) bool {
	for _, l := range p.NormLabels() {
		if l == label {
			return true
		}
	}
	return false
}

// HasColor 判断派生颜色集中是否包含 color（入参应已是小写颜色名）。
func (p *Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}
