// Package facet 提供商品的可筛选维度：颜色、服装类目、价格区间。
// 三类识别都基于封闭枚举的查表（数据而非代码），便于单测与扩展，
// 不和打分/过滤逻辑耦合。
package facet

import "strings"

// ColorVocabulary 是颜色识别的主列表（有序、封闭）。
// 多词颜色（"denim blue"、"sky blue"）与单词颜色是互相独立的子串检测：
// 文本含 "sky blue" 时，"sky blue" 和 "blue" 都会命中——这是集合并集，不是二选一。
var ColorVocabulary = []string{
	"black", "navy", "maroon", "indigo", "charcoal", "denim blue", "purple",
	"brown", "olive", "rust", "teal", "blue", "green", "red", "orange",
	"gold", "mustard", "pink", "lavender", "sky blue", "dark blue",
	"light blue", "mint", "peach", "beige", "cream", "off white", "white",
	"silver",
}

// ExtractColors 从自由文本标签与标题中派生归一化颜色集。
// 纯函数、幂等：把 labels 与 title 拼成一段小写检索文本，
// 逐个词表项做子串包含检测，命中即收集，按词表顺序去重输出。
// 空输入返回空集，永不失败。
func ExtractColors(labels []string, title string) []string {
	parts := make([]string, 0, len(labels)+1)
	parts = append(parts, labels...)
	parts = append(parts, title)
	text := strings.ToLower(strings.Join(parts, " "))

	var found []string
	seen := make(map[string]bool, 4)
	for _, c := range ColorVocabulary {
		if strings.Contains(text, c) && !seen[c] {
			seen[c] = true
			found = append(found, c)
		}
	}
	return found
}
