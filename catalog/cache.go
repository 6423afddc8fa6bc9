package catalog

import (
	"context"
	"sync"

	"github.com/voguesphere/stylekit/core"
)

// Cache 是进程级的目录缓存：一次写入、多次只读。
//
// 设计要点：
//   - 显式持有（不是包级隐式单例），初始化由互斥锁保证单写者，
//     并发首访不会产生写竞争
//   - 缓存的是富化后的目录快照；派生分数（Score）绝不缓存——
//     分数取决于调用方当次的信号集，属于请求级状态
//   - Invalidate / Reload 是显式操作，由集成方决定何时换数据
//
// Get 返回的切片是共享只读快照：任何要写 Score 的链路必须先 Clone
// （recall.catalog Node 已经替每次请求做了这件事）。
type Cache struct {
	loader *Loader

	mu       sync.RWMutex
	products []*core.Product
	loaded   bool
}

func NewCache(loader *Loader) *Cache {
	return &Cache{loader: loader}
}

// Get 返回目录快照，首次调用触发加载。
// 加载失败不置位 loaded，下次调用会重试。
func (c *Cache) Get(ctx context.Context) ([]*core.Product, error) {
	c.mu.RLock()
	if c.loaded {
		defer c.mu.RUnlock()
		return c.products, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return c.products, nil
	}

	products, err := c.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.products = products
	c.loaded = true
	return c.products, nil
}

// Loaded 报告缓存是否已完成首次加载。
func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Invalidate 清空缓存，下次 Get 重新加载。
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = nil
	c.loaded = false
}

// Reload 立即重新加载并替换快照。
func (c *Cache) Reload(ctx context.Context) ([]*core.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.products = products
	c.loaded = true
	return c.products, nil
}
