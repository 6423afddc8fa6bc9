// Package rank 按测验聚合信号对目录商品做优先级加权打分与排序。
package rank

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/voguesphere/stylekit/core"
)

// DefaultLimit 是排序结果的默认截断数量。
const DefaultLimit = 30

// Ranker 是推荐排序引擎。
//
// 打分（逐商品独立计算，labels 为商品的归一化标签集）：
//   - 每个信号标签在每个商品上至多按一种方式计分：
//     完全相等记 Exact，否则任一商品标签含其为子串记 Partial，否则不计——
//     精确命中严格优先，两者互斥，从不叠加
//   - 各 Tier 按 DefaultTiers 的门控规则决定是否参与，总分为各层贡献之和
//
// 选取：score > 0 的商品按分数稳定降序（同分保持目录原序），取前 Limit；
// 无任何正分命中时，从整个目录随机抽样 Limit 个兜底——可用性优先于相关性，
// 目录非空则结果必非空。目录为空直接返回空，不触发兜底。
//
// Rank 对输入只读：打分写在商品的浅拷贝上，并发请求共享同一目录快照是安全的。
type Ranker struct {
	Tiers []Tier // 为空时使用 DefaultTiers
	Limit int    // <=0 时使用 DefaultLimit

	// Rand 可注入的随机源（兜底抽样用），nil 时使用全局源
	Rand *rand.Rand
}

// Score 计算单个商品对信号的匹配分。纯函数，不写商品。
func (r *Ranker) Score(p *core.Product, sig core.Signal) float64 {
	if p == nil {
		return 0
	}
	norm := p.NormLabels()
	var score float64
	for _, tier := range r.tiers() {
		if !tier.Active(sig) {
			continue
		}
		for _, label := range tier.Labels(sig) {
			score += matchWeight(norm, label, tier.Exact, tier.Partial)
		}
	}
	return score
}

// Rank 对整个目录打分、排序并截断。
func (r *Ranker) Rank(catalog []*core.Product, sig core.Signal) []*core.Product {
	if len(catalog) == 0 {
		return nil
	}
	limit := r.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	scored := make([]*core.Product, 0, len(catalog))
	matched := make([]*core.Product, 0, len(catalog))
	for _, p := range catalog {
		if p == nil {
			continue
		}
		cp := p.Clone()
		cp.Score = r.Score(p, sig)
		scored = append(scored, cp)
		if cp.Score > 0 {
			matched = append(matched, cp)
		}
	}

	if len(matched) == 0 {
		return r.sample(scored, limit)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Score > matched[j].Score
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// sample 兜底路径：shuffle-then-take，从全量目录抽 limit 个。
func (r *Ranker) sample(all []*core.Product, limit int) []*core.Product {
	shuffle := rand.Shuffle
	if r.Rand != nil {
		shuffle = r.Rand.Shuffle
	}
	shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})
	if len(all) > limit {
		all = all[:limit]
	}
	return all
}

func (r *Ranker) tiers() []Tier {
	if len(r.Tiers) > 0 {
		return r.Tiers
	}
	return DefaultTiers()
}

// matchWeight 返回单个信号标签在商品标签集上的加分。
// 精确命中与子串命中互斥，只取较高者。
func matchWeight(normLabels []string, label string, exact, partial float64) float64 {
	for _, l := range normLabels {
		if l == label {
			return exact
		}
	}
	for _, l := range normLabels {
		if strings.Contains(l, label) {
			return partial
		}
	}
	return 0
}
