package core

import (
	"time"

	"github.com/google/uuid"
)

// 保留问题标识：风格测验中颜色题与身材题的固定 question_id。
// 其余 question_id 一律按穿搭（outfit）题处理。语义只到此为止，不做额外约定。
var (
	QuestionColors   = uuid.MustParse("dd97363b-95e7-47c1-a813-1214b31b296a")
	QuestionBodyType = uuid.MustParse("2f4b2a9b-f392-4bbe-942c-1cec996a9e48")
)

// QuizResponse 是一条已持久化的测验回答记录（外部存储所有，本核心只读快照）。
// Value 是序列化负载：可能是 JSON 字符串数组、JSON 标量字符串，
// 或者根本不是合法 JSON（此时按原始字符串兜底，见 quiz 包）。
// 同一用户可能有多次测验；只有时间戳最大的那一批记录是当前会话。
type QuizResponse struct {
	QuestionID uuid.UUID `json:"question_id"`
	Value      string    `json:"value"`
	Timestamp  time.Time `json:"timestamp"`
}
