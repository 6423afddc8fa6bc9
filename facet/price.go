package facet

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/voguesphere/stylekit/core"
)

// currencyPrefix 匹配 Rs / RS / PKR（大小写不敏感）及其后可选的句点与空白。
// 目录来源的价格文本格式不统一："Rs. 3,500"、"PKR3000"、"rs 900" 都要能归一。
var currencyPrefix = regexp.MustCompile(`(?i)(rs|pkr)\.?\s*`)

// ParsePrice 把不可信的原始价格文本归一成数值。
// 规则：剥掉币种前缀、去掉千位逗号、去首尾空白后按十进制解析；
// 解析失败或结果非正数时返回 (0, false)。永不 panic。
func ParsePrice(raw string) (float64, bool) {
	cleaned := currencyPrefix.ReplaceAllString(raw, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// MatchPriceRange 判断原始价格文本是否落入指定区间。
// 价格解析失败的商品在任一激活的价格筛选下都不命中（既不算 low 也不算 high）。
func MatchPriceRange(raw string, pr core.PriceRange) bool {
	n, ok := ParsePrice(raw)
	if !ok {
		return false
	}
	switch pr {
	case core.PriceLow:
		return n <= core.PriceThreshold
	case core.PriceHigh:
		return n > core.PriceThreshold
	default:
		return false
	}
}
