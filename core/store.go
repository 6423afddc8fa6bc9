package core

import "context"

// Store 是存储的领域接口。
//
// 设计原则：
//   - 接口定义在 core 包，实现在 store 包（memory / redis）
//   - 目录品牌文件、测验回答记录都以字节负载存取，序列化由上层决定
//   - key 不存在时返回 ErrStoreNotFound
type Store interface {
	Name() string

	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl ...int) error
	Delete(ctx context.Context, key string) error

	BatchGet(ctx context.Context, keys []string) (map[string][]byte, error)
	BatchSet(ctx context.Context, kvs map[string][]byte, ttl ...int) error

	Close() error
}

// KeyValueStore 在 Store 之上扩展哈希结构操作。
// 测验回答按 (key=quiz:responses, field=userID) 存放，一次 HGet 取整个用户的记录。
type KeyValueStore interface {
	Store

	HGet(ctx context.Context, key, field string) ([]byte, error)
	HSet(ctx context.Context, key, field string, value []byte) error
	HGetAll(ctx context.Context, key string) (map[string][]byte, error)
}
