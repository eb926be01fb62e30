package keyring

import (
	"context"
	"runtime"

	"go.uber.org/fx"

	"github.com/hhan593/SwarmDrop/config"
	"github.com/hhan593/SwarmDrop/internal/core/metrics"
)

// ============================================================================
//                              模块输入依赖
// ============================================================================

// ModuleInput 定义模块输入依赖
type ModuleInput struct {
	fx.In

	Config  *config.Config   `optional:"true"`
	Metrics *metrics.Metrics `optional:"true"`

	// Factory 自定义后端工厂（测试注入），为空时按平台选择
	Factory Factory `optional:"true"`
}

// ModuleOutput 定义模块输出服务
type ModuleOutput struct {
	fx.Out

	Bootstrap *Bootstrap
	Gateway   *Gateway
}

// ProvideServices 提供 Bootstrap 与 Gateway
//
// 后端不在这里构建：第一次凭据操作才会触发平台选择与安装。
func ProvideServices(input ModuleInput) ModuleOutput {
	cfg := input.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}

	factory := input.Factory
	if factory == nil {
		factory = PlatformFactory(runtime.GOOS, KeystoreOptions{
			Path:       cfg.Keyring.ResolveKeystorePath(cfg.Storage),
			Passphrase: cfg.Keyring.KeystorePassphrase,
		})
	}

	b := NewBootstrap(factory)
	return ModuleOutput{
		Bootstrap: b,
		Gateway:   NewGateway(b, cfg.Keyring.MaxValueSize, input.Metrics),
	}
}

// Module 返回 keyring Fx 模块
//
// 生命周期:
//   - OnStop: 释放后端资源（keystore 关闭数据库）
func Module() fx.Option {
	return fx.Module("keyring",
		fx.Provide(ProvideServices),
		fx.Invoke(registerLifecycle),
	)
}

func registerLifecycle(lc fx.Lifecycle, b *Bootstrap) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return b.Close()
		},
	})
}
