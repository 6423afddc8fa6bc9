package rank

import "github.com/voguesphere/stylekit/core"

// Tier 把一个打分优先级层建模成一等数据：标签来源、精确/子串权重、激活门控。
// 优先级规则不再藏在嵌套分支里，按序处理 Tier 列表即可，门控本身可单测。
type Tier struct {
	Name    string
	Exact   float64 // 标签与商品标签完全相等时的加分
	Partial float64 // 标签是某个商品标签的子串时的加分
	Labels  func(sig core.Signal) []string
	Active  func(sig core.Signal) bool
}

// DefaultTiers 返回默认的三层打分表：
//   - outfit   3 / 1.5，始终激活（最高优先级）
//   - bodytype 2 / 1，仅当 outfit 标签为空时激活（严格从属的兜底层）
//   - color    1 / 0.5，始终激活（独立叠加，不受前两层影响）
func DefaultTiers() []Tier {
	always := func(core.Signal) bool { return true }
	return []Tier{
		{
			Name:    "outfit",
			Exact:   3,
			Partial: 1.5,
			Labels:  func(sig core.Signal) []string { return sig.Outfit },
			Active:  always,
		},
		{
			Name:    "bodytype",
			Exact:   2,
			Partial: 1,
			Labels:  func(sig core.Signal) []string { return sig.BodyType },
			Active:  func(sig core.Signal) bool { return len(sig.Outfit) == 0 },
		},
		{
			Name:    "color",
			Exact:   1,
			Partial: 0.5,
			Labels:  func(sig core.Signal) []string { return sig.Color },
			Active:  always,
		},
	}
}
