package quiz

import (
	"context"

	json "github.com/goccy/go-json"

	"github.com/voguesphere/stylekit/core"
)

// DefaultResponsesKey 是回答记录在 KeyValueStore 里的默认哈希 key。
const DefaultResponsesKey = "quiz:responses"

// Source 表示测验回答的来源（外部存储协作方，本核心只读）。
type Source interface {
	Name() string
	Responses(ctx context.Context, userID string) ([]core.QuizResponse, error)
}

// StoreSource 从 KeyValueStore 读取回答记录：
// (key=Key, field=userID) 存放该用户全部记录的 JSON 数组。
type StoreSource struct {
	Store core.KeyValueStore
	Key   string // 默认 DefaultResponsesKey
}

func (s *StoreSource) Name() string { return "quiz.store" }

// Responses 读取并解码一个用户的全部回答记录。
// 用户没有记录时返回空集（不是错误）；负载解码失败返回 DomainError。
func (s *StoreSource) Responses(ctx context.Context, userID string) ([]core.QuizResponse, error) {
	if s.Store == nil || userID == "" {
		return nil, nil
	}
	key := s.Key
	if key == "" {
		key = DefaultResponsesKey
	}

	data, err := s.Store.HGet(ctx, key, userID)
	if err != nil {
		if core.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var records []core.QuizResponse
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, core.NewDomainError(core.ModuleQuiz, core.ErrorCodeDecodeFailed,
			"quiz: decode responses for user "+userID+": "+err.Error())
	}
	return records, nil
}
