package identity

import (
	"go.uber.org/fx"

	"github.com/hhan593/SwarmDrop/internal/core/keyring"
)

// ModuleInput 定义模块输入依赖
type ModuleInput struct {
	fx.In

	Gateway *keyring.Gateway
}

// ProvideProvider 提供身份提供者
//
// 不在构建时加载身份，避免应用启动就触发凭据存储初始化。
func ProvideProvider(input ModuleInput) *Provider {
	return NewProvider(input.Gateway)
}

// Module 返回 identity Fx 模块
func Module() fx.Option {
	return fx.Module("identity",
		fx.Provide(ProvideProvider),
	)
}
