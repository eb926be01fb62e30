package app

import (
	"go.uber.org/fx"

	"github.com/hhan593/SwarmDrop/internal/core/host"
	"github.com/hhan593/SwarmDrop/internal/core/identity"
	"github.com/hhan593/SwarmDrop/internal/core/keyring"
	"github.com/hhan593/SwarmDrop/internal/core/metrics"
	"github.com/hhan593/SwarmDrop/internal/core/session"
)

// modulesets.go 集中维护模块清单，是 Bootstrap 组装的唯一模块来源。

// ============================================================================
//                              固定必选模块集合
// ============================================================================

// CoreModules 核心模块组合
//
// 指标、凭据存储、身份与会话管理。
// 这些模块始终加载；凭据后端与会话都在首次使用时才真正创建。
func CoreModules() fx.Option {
	return fx.Options(
		metrics.Module,
		keyring.Module(),
		identity.Module(),
		session.Module(),
	)
}

// EngineModules 引擎模块组合
//
// 默认的 libp2p 引擎；Bootstrap 在调用方注入引擎时跳过它。
func EngineModules() fx.Option {
	return fx.Options(
		host.Module(),
	)
}
