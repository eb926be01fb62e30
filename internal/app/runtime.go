package app

import (
	"context"

	"github.com/hhan593/SwarmDrop/config"
	"github.com/hhan593/SwarmDrop/internal/core/identity"
	"github.com/hhan593/SwarmDrop/internal/core/keyring"
	"github.com/hhan593/SwarmDrop/internal/core/metrics"
	"github.com/hhan593/SwarmDrop/internal/core/session"
)

// Runtime 表示一个已通过 fx 组装完成的 SwarmDrop 运行时。
//
// 根包的 App 组合 Runtime 暴露宿主命令面。
type Runtime struct {
	Config      *config.Config
	Sessions    *session.Manager
	Credentials *keyring.Gateway
	Store       *keyring.Bootstrap
	Identity    *identity.Provider
	Metrics     *metrics.Metrics // 指标禁用时为 nil

	stop func(ctx context.Context) error
}

// Stop 停止运行时（触发 fx 生命周期 OnStop）。
func (r *Runtime) Stop(ctx context.Context) error {
	if r.stop == nil {
		return nil
	}
	return r.stop(ctx)
}
