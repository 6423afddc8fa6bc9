package core

// Signal 是一次排序请求的聚合信号：用户测验回答折叠出的三组标签。
// 三组均为已归一化（小写、去空白）的字符串；允许重复——重复标签在打分时
// 各自独立计分（multiset 语义），测验路径重复命中某标签即是在加强其权重。
//
// Signal 每次请求重新构造、用完即弃，不得跨请求缓存派生分数。
type Signal struct {
	// Outfit 穿搭标签（最高优先级）
	Outfit []string
	// BodyType 身材标签（仅当 Outfit 为空时参与打分的兜底层）
	BodyType []string
	// Color 颜色标签（最低权重，但始终参与打分）
	Color []string
}

// Empty 判断三组标签是否全部为空。
// 全空信号下所有商品得分为 0，Rank 会走随机兜底路径。
func (s Signal) Empty() bool {
	return len(s.Outfit) == 0 && len(s.BodyType) == 0 && len(s.Color) == 0
}
