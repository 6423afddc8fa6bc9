package facet

import (
	"strings"

	"github.com/voguesphere/stylekit/core"
)

// ClothingKeywords 是服装类目到关键词列表的封闭映射。
// 类目匹配是关键词成员判断而不是子串：商品标签必须（大小写不敏感地）
// 完全等于某个关键词才算命中，"t-shirts" 不会命中 "t-shirt"。
var ClothingKeywords = map[core.ClothingType][]string{
	core.ClothingWestern: {
		"t-shirt", "casual shirt", "formal shirt", "tank top", "blouse",
		"collar shirt", "half sleeves shirt", "full sleeves shirt",
		"button down shirt", "top", "hoodie", "sweater", "cardigan",
		"blazer", "jacket", "coat", "denim jacket", "shirt dress", "skirt",
		"jumpsuit", "romper", "western dress", "pants", "jeans", "playsuit",
		"sweatshirt", "zipper hoodie", "pullover", "crewneck",
		"long a-line dress", "maxi dress", "two piece skirt set",
		"co-ord set", "top and skirt",
	},
	core.ClothingEastern: {
		"embroidered shalwar kameez", "printed kurti", "maxi dress", "dress",
		"kurta", "shalwar kameez", "frock", "shalwar kameez with duppata",
		"embroidered shalwar kameez with duppata", "long frock",
		"long a-line dress", "long dress", "anarkali", "maxi", "heavy maxi",
		"wedding maxi", "long maxifrock",
	},
	core.ClothingPants: {
		"skinny jeans", "straight jeans", "wide leg jeans", "bootcut jeans",
		"high waisted jeans", "ripped jeans", "cropped jeans", "jeans",
		"denims", "trousers", "pants",
	},
	core.ClothingWedding: {
		"lehenga choli", "anarkali dress", "floor length gown", "lehenga",
		"saree", "embroidered maxi", "handworked gown", "embroidered frock",
		"wedding dress", "sharara suit", "gharara suit",
		"angrakha style dress", "long kameez with lehenga",
		"embroidered long dress",
		"embroidered shalwar kameez with duppata", "maxi", "heavy maxi",
		"wedding maxi", "anarkali",
	},
	core.ClothingSaree: {
		"saree", "sari",
	},
}

// MatchClothingType 判断商品原始标签集是否命中指定类目。
// 未知类目（不在映射表中）没有关键词，恒不命中。
func MatchClothingType(labels []string, ct core.ClothingType) bool {
	keywords := ClothingKeywords[ct]
	if len(keywords) == 0 {
		return false
	}
	for _, label := range labels {
		l := strings.ToLower(strings.TrimSpace(label))
		for _, kw := range keywords {
			if l == kw {
				return true
			}
		}
	}
	return false
}
