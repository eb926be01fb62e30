package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/hhan593/SwarmDrop/config"
	"github.com/hhan593/SwarmDrop/internal/core/keyring"
	"github.com/hhan593/SwarmDrop/pkg/interfaces"
)

const (
	// DefaultStartTimeout 默认启动超时
	DefaultStartTimeout = 30 * time.Second

	// DefaultStopTimeout 默认停止超时
	DefaultStopTimeout = 30 * time.Second
)

// BootstrapOption Bootstrap 配置选项
type BootstrapOption func(*Bootstrap)

// WithConfig 设置配置
func WithConfig(cfg *config.Config) BootstrapOption {
	return func(b *Bootstrap) {
		b.config = cfg
	}
}

// WithVersion 设置应用版本（写入 UserAgent）
func WithVersion(version string) BootstrapOption {
	return func(b *Bootstrap) {
		b.version = version
	}
}

// WithEngine 替换 P2P 引擎
func WithEngine(engine interfaces.Engine) BootstrapOption {
	return func(b *Bootstrap) {
		b.engine = engine
	}
}

// WithBackendFactory 替换凭据后端工厂
func WithBackendFactory(factory keyring.Factory) BootstrapOption {
	return func(b *Bootstrap) {
		b.factory = factory
	}
}

// WithFxOptions 追加额外的 fx 选项
func WithFxOptions(opts ...fx.Option) BootstrapOption {
	return func(b *Bootstrap) {
		b.fxOptions = append(b.fxOptions, opts...)
	}
}

// WithTimeouts 设置启动与停止超时，非正值保持默认
func WithTimeouts(start, stop time.Duration) BootstrapOption {
	return func(b *Bootstrap) {
		if start > 0 {
			b.startTimeout = start
		}
		if stop > 0 {
			b.stopTimeout = stop
		}
	}
}
