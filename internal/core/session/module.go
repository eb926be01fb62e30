package session

import (
	"context"

	"go.uber.org/fx"

	"github.com/hhan593/SwarmDrop/config"
	"github.com/hhan593/SwarmDrop/internal/core/metrics"
	"github.com/hhan593/SwarmDrop/pkg/interfaces"
)

// ModuleInput 定义模块输入依赖
type ModuleInput struct {
	fx.In

	Engine  interfaces.Engine
	Config  *config.Config   `optional:"true"`
	Metrics *metrics.Metrics `optional:"true"`
	Version string           `name:"version" optional:"true"`
}

// ProvideManager 提供会话管理器
func ProvideManager(input ModuleInput) *Manager {
	cfg := DefaultConfig()
	if input.Config != nil {
		cfg.Node = input.Config.Node
		cfg.Bridge = input.Config.Bridge
	}
	if input.Version != "" {
		cfg.Version = input.Version
	}
	return NewManager(input.Engine, cfg, WithMetrics(input.Metrics))
}

// Module 返回 session Fx 模块
//
// 生命周期:
//   - OnStop: 关闭活跃会话
func Module() fx.Option {
	return fx.Module("session",
		fx.Provide(ProvideManager),
		fx.Invoke(registerLifecycle),
	)
}

func registerLifecycle(lc fx.Lifecycle, m *Manager) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return m.Shutdown(ctx)
		},
	})
}
