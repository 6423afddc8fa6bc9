package catalog

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/voguesphere/stylekit/core"
	"github.com/voguesphere/stylekit/facet"
)

// Loader 并发拉取多个目录来源，合并并富化结果。
// 单个来源失败只记日志并跳过，不拖垮其余来源；合并顺序按 Sources 声明序，
// 保证同一批来源下目录快照的顺序是确定的（排序同分时要保持目录原序）。
type Loader struct {
	Sources       []Source
	Timeout       time.Duration // 每个来源的超时时间（0 表示不限制）
	MaxConcurrent int           // 最大并发数（0 表示无限制）
	Logger        zerolog.Logger
}

// Load 拉取全部来源并返回富化后的目录快照。
// 富化一次完成：派生颜色集写入每个商品（幂等，见 facet.ExtractColors）。
func (l *Loader) Load(ctx context.Context) ([]*core.Product, error) {
	if len(l.Sources) == 0 {
		return nil, nil
	}

	results := make([][]*core.Product, len(l.Sources))
	eg, egCtx := errgroup.WithContext(ctx)
	if l.MaxConcurrent > 0 {
		eg.SetLimit(l.MaxConcurrent)
	}

	for i, src := range l.Sources {
		i, src := i, src
		eg.Go(func() error {
			fetchCtx := egCtx
			if l.Timeout > 0 {
				var cancel context.CancelFunc
				fetchCtx, cancel = context.WithTimeout(egCtx, l.Timeout)
				defer cancel()
			}

			products, err := src.Fetch(fetchCtx)
			if err != nil {
				// 来源失败降级：跳过该品牌，不中断其他来源
				l.Logger.Warn().
					Str("source", src.Name()).
					Err(err).
					Msg("catalog source fetch failed, skipping")
				return nil
			}
			results[i] = products
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var all []*core.Product
	for _, products := range results {
		for _, p := range products {
			if p == nil {
				continue
			}
			p.Colors = facet.ExtractColors(p.Labels, p.Title)
			all = append(all, p)
		}
	}

	l.Logger.Debug().Int("products", len(all)).Int("sources", len(l.Sources)).
		Msg("catalog loaded")
	return all, nil
}

// StoreSources 按 (key, brand) 映射批量构建 StoreSource，便于从配置装配 Loader。
// 按 key 排序，保证来源顺序（进而目录快照顺序）跨进程确定。
func StoreSources(st core.Store, brands map[string]string) []Source {
	keys := make([]string, 0, len(brands))
	for key := range brands {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]Source, 0, len(keys))
	for _, key := range keys {
		out = append(out, &StoreSource{Store: st, Key: key, Brand: brands[key]})
	}
	return out
}
