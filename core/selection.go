package core

// ClothingType 是服装类目筛选的封闭枚举。
type ClothingType string

const (
	ClothingWestern ClothingType = "western"
	ClothingEastern ClothingType = "eastern"
	ClothingPants   ClothingType = "pants"
	ClothingWedding ClothingType = "wedding"
	ClothingSaree   ClothingType = "saree"
)

// PriceRange 是价格区间筛选的封闭枚举。
// low: 价格 ≤ 10000；high: 价格 > 10000（目录隐含币种单位）。
type PriceRange string

const (
	PriceLow  PriceRange = "low"
	PriceHigh PriceRange = "high"
)

// PriceThreshold 是 low/high 的分界值。
const PriceThreshold = 10000

// Selection 是用户当前的多维筛选状态（UI 态，会话内有效，不持久化）。
// 每个维度至多一个取值；零值表示该维度不过滤（谓词恒真）。
type Selection struct {
	// ClothingType 服装类目，空串表示不过滤
	ClothingType ClothingType
	// Color 归一化颜色名（小写），空串表示不过滤
	Color string
	// PriceRange 价格区间，空串表示不过滤
	PriceRange PriceRange
}

// Empty 判断是否所有维度均未激活。
func (s Selection) Empty() bool {
	return s.ClothingType == "" && s.Color == "" && s.PriceRange == ""
}
