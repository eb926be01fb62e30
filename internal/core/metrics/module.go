package metrics

import (
	"go.uber.org/fx"

	"github.com/hhan593/SwarmDrop/config"
)

// Params Metrics 依赖参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config `optional:"true"`
}

// Module 是 metrics 的 Fx 模块
//
// 指标被禁用时提供 nil，各组件的记录调用退化为空操作。
var Module = fx.Module("metrics",
	fx.Provide(NewFromParams),
)

// NewFromParams 从参数创建 Metrics
func NewFromParams(p Params) *Metrics {
	if p.UnifiedCfg != nil && !p.UnifiedCfg.Metrics.Enabled {
		return nil
	}
	return New()
}
