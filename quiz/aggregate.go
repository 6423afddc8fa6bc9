package quiz

import (
	"time"

	"github.com/voguesphere/stylekit/core"
)

// Aggregate 把一个用户的回答记录折叠成三组优先级标签。
//
// 算法：
//  1. 记录为空 → 返回三组空集
//  2. 取 maxTimestamp，只保留 timestamp == maxTimestamp 的记录（最新一次测验会话；
//     旧会话永不混入）
//  3. 逐条解码 Value（见 DecodeValue），按保留问题标识分路：
//     颜色题 → Color；身材题 → BodyType；其余 → Outfit
//  4. 重复标签保留（multiset 语义），下游打分按条累计
//
// 失败语义：负载再脏也不会中断聚合——单条记录就地降级为原始文本兜底，
// 只有兜底文本为空时该记录才贡献空集。
func Aggregate(records []core.QuizResponse) core.Signal {
	if len(records) == 0 {
		return core.Signal{}
	}

	var max time.Time
	for _, r := range records {
		if r.Timestamp.After(max) {
			max = r.Timestamp
		}
	}

	var sig core.Signal
	for _, r := range records {
		if !r.Timestamp.Equal(max) {
			continue
		}
		labels := DecodeValue(r.Value).Labels()
		if len(labels) == 0 {
			continue
		}
		switch r.QuestionID {
		case core.QuestionColors:
			sig.Color = append(sig.Color, labels...)
		case core.QuestionBodyType:
			sig.BodyType = append(sig.BodyType, labels...)
		default:
			sig.Outfit = append(sig.Outfit, labels...)
		}
	}
	return sig
}
