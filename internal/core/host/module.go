package host

import (
	"go.uber.org/fx"

	"github.com/hhan593/SwarmDrop/pkg/interfaces"
)

// ModuleInput 模块输入依赖
type ModuleInput struct {
	fx.In

	// Options 额外的引擎选项（测试注入）
	Options []Option `group:"host_options"`
}

// ModuleOutput 模块输出
type ModuleOutput struct {
	fx.Out

	Engine interfaces.Engine
}

// ProvideEngine 提供 libp2p 引擎
//
// 引擎本身无状态，主机在每次会话启动时才构造。
func ProvideEngine(input ModuleInput) ModuleOutput {
	return ModuleOutput{Engine: NewEngine(input.Options...)}
}

// Module 返回 host Fx 模块
func Module() fx.Option {
	return fx.Module("host",
		fx.Provide(ProvideEngine),
	)
}
