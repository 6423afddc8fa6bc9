// Package quiz 把用户的测验回答记录折叠成排序用的聚合信号。
package quiz

import (
	"strings"

	json "github.com/goccy/go-json"
)

// ValueKind 标记回答负载的解码结果形态。
type ValueKind int

const (
	// KindArray JSON 字符串数组
	KindArray ValueKind = iota
	// KindScalar JSON 标量字符串
	KindScalar
	// KindRaw 不是合法 JSON（或不是字符串形态），按原始文本兜底
	KindRaw
)

// Value 是回答负载的带标签变体：{Array | Scalar | Raw}。
// 动态形态在边界处一次性显式解码，兜底不再是异常捕获的副作用。
type Value struct {
	Kind  ValueKind
	Items []string // 已小写、去空白；Raw 兜底为空文本时 Items 为空
}

// DecodeValue 解码一条回答负载。
// 依次尝试：JSON 字符串数组 → JSON 标量字符串 → 原始文本兜底。
// 兜底文本归一化后为空则贡献空标签集；任何输入都不会失败。
func DecodeValue(raw string) Value {
	// JSON null 会被无声解进 nil 切片；测验端 stringify(null) 的负载
	// 必须走原始文本兜底，而不是解成空数组。
	if strings.TrimSpace(raw) == "null" {
		return Value{Kind: KindRaw, Items: []string{"null"}}
	}

	var arr []string
	if err := json.Unmarshal([]byte(raw), &arr); err == nil {
		items := make([]string, 0, len(arr))
		for _, s := range arr {
			items = append(items, strings.ToLower(strings.TrimSpace(s)))
		}
		return Value{Kind: KindArray, Items: items}
	}

	var scalar string
	if err := json.Unmarshal([]byte(raw), &scalar); err == nil {
		return Value{Kind: KindScalar, Items: []string{strings.ToLower(strings.TrimSpace(scalar))}}
	}

	fallback := strings.ToLower(strings.TrimSpace(raw))
	if fallback == "" {
		return Value{Kind: KindRaw}
	}
	return Value{Kind: KindRaw, Items: []string{fallback}}
}

// Labels 返回该负载贡献的标签列表（可能为空，调用方不必判空后再 append）。
func (v Value) Labels() []string {
	return v.Items
}
