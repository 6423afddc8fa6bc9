// Package catalog 负责目录的获取、颜色富化与进程级缓存。
package catalog

import (
	"context"

	json "github.com/goccy/go-json"

	"github.com/voguesphere/stylekit/core"
)

// KeyPrefix 是品牌目录文件在 Store 里的 key 前缀，例如 "catalog:khaadi"。
const KeyPrefix = "catalog:"

// Source 表示一个可复用的目录来源（通常一个品牌一个来源）。
// 你可以把它理解为"可并发 fan-out 的抓取单元"。
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]*core.Product, error)
}

// rawProduct 是来源侧的原始记录：url/link 两种字段都可能出现。
type rawProduct struct {
	Title  string   `json:"title"`
	Price  string   `json:"price"`
	Image  string   `json:"image"`
	URL    string   `json:"url"`
	Link   string   `json:"link"`
	Labels []string `json:"labels"`
}

// brandFile 是单个品牌文件的负载：{"products": [...]}
type brandFile struct {
	Products []rawProduct `json:"products"`
}

// StoreSource 从 Store 读取一个品牌的目录文件。
type StoreSource struct {
	Store core.Store
	Key   string // 例如 "catalog:khaadi"
	Brand string // 品牌展示名
}

func (s *StoreSource) Name() string {
	if s.Brand != "" {
		return "catalog." + s.Brand
	}
	return "catalog.store"
}

// Fetch 读取并解码品牌文件。key 不存在或负载解码失败都返回错误，
// 由 Loader 决定跳过该来源（单品牌失败不拖垮全量加载）。
func (s *StoreSource) Fetch(ctx context.Context) ([]*core.Product, error) {
	if s.Store == nil {
		return nil, nil
	}

	data, err := s.Store.Get(ctx, s.Key)
	if err != nil {
		return nil, err
	}

	var file brandFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeDecodeFailed,
			"catalog: decode "+s.Key+": "+err.Error())
	}

	out := make([]*core.Product, 0, len(file.Products))
	for _, r := range file.Products {
		url := r.URL
		if url == "" {
			url = r.Link
		}
		out = append(out, &core.Product{
			Title:  r.Title,
			Price:  r.Price,
			Image:  r.Image,
			URL:    url,
			Brand:  s.Brand,
			Labels: r.Labels,
		})
	}
	return out, nil
}
