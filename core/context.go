package core

// RecommendContext 承载一次推荐/筛选请求的用户侧输入，贯穿整个 Pipeline 透传。
// Signal 与 Selection 都是请求级快照：构造一次、用完即弃。
type RecommendContext struct {
	UserID string // 使用 string 类型（通用，支持所有 ID 格式）
	Scene  string // 场景标识，例如 "discover" / "personalized"

	// Signal 是测验聚合信号，驱动 rank.SignalNode 打分。
	// 为 nil 时按全空信号处理（所有商品 0 分，触发随机兜底）。
	Signal *Signal

	// Selection 是多维筛选状态，驱动 filter 包的各 facet 过滤器。
	// 为 nil 时所有 facet 过滤器放行。
	Selection *Selection

	// Params 请求级上下文参数（debug 开关、分页参数等），各 Node 按需读取。
	Params map[string]any
}

// GetSignal 返回聚合信号；nil 时返回零值信号（全空）。
func (rctx *RecommendContext) GetSignal() Signal {
	if rctx == nil || rctx.Signal == nil {
		return Signal{}
	}
	return *rctx.Signal
}

// GetSelection 返回筛选状态；nil 时返回零值（全部不过滤）。
func (rctx *RecommendContext) GetSelection() Selection {
	if rctx == nil || rctx.Selection == nil {
		return Selection{}
	}
	return *rctx.Selection
}
