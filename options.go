package swarmdrop

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/fx"

	"github.com/hhan593/SwarmDrop/config"
	"github.com/hhan593/SwarmDrop/internal/app"
	"github.com/hhan593/SwarmDrop/internal/core/keyring"
	"github.com/hhan593/SwarmDrop/pkg/interfaces"
)

// Option 用户配置选项函数
type Option func(*options) error

// options 内部选项结构
type options struct {
	config  *config.Config
	version string

	engine  interfaces.Engine
	factory keyring.Factory

	startTimeout time.Duration
	stopTimeout  time.Duration

	fxOptions []fx.Option
}

func newOptions() *options {
	return &options{
		config:  config.NewConfig(),
		version: Version,
	}
}

// bootstrapOptions 转换为编排层选项
func (o *options) bootstrapOptions() []app.BootstrapOption {
	opts := []app.BootstrapOption{
		app.WithVersion(o.version),
		app.WithTimeouts(o.startTimeout, o.stopTimeout),
	}
	if o.engine != nil {
		opts = append(opts, app.WithEngine(o.engine))
	}
	if o.factory != nil {
		opts = append(opts, app.WithBackendFactory(o.factory))
	}
	if len(o.fxOptions) > 0 {
		opts = append(opts, app.WithFxOptions(o.fxOptions...))
	}
	return opts
}

// ════════════════════════════════════════════════════════════════════════════
//                              配置选项
// ════════════════════════════════════════════════════════════════════════════

// WithConfig 使用完整配置
//
// 配置会被复制，之后对 cfg 的修改不影响 App。
func WithConfig(cfg *config.Config) Option {
	return func(o *options) error {
		if cfg == nil {
			return errors.New("config is nil")
		}
		o.config = cfg.Clone()
		return nil
	}
}

// WithConfigFile 从 YAML 文件加载配置（环境变量覆盖文件）
func WithConfigFile(path string) Option {
	return func(o *options) error {
		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		o.config = cfg
		return nil
	}
}

// WithDataDir 设置数据目录
func WithDataDir(dir string) Option {
	return func(o *options) error {
		o.config.Storage.DataDir = dir
		return nil
	}
}

// WithListenAddrs 设置监听地址
func WithListenAddrs(addrs ...string) Option {
	return func(o *options) error {
		o.config.Node = o.config.Node.WithListenAddrs(addrs...)
		return nil
	}
}

// WithMDNS 启用或禁用局域网发现
func WithMDNS(enable bool) Option {
	return func(o *options) error {
		o.config.Node = o.config.Node.WithMDNS(enable)
		return nil
	}
}

// WithMetrics 启用或禁用 Prometheus 指标
func WithMetrics(enable bool) Option {
	return func(o *options) error {
		o.config.Metrics.Enabled = enable
		return nil
	}
}

// WithVersion 覆盖写入 UserAgent 的应用版本
func WithVersion(version string) Option {
	return func(o *options) error {
		if version == "" {
			return errors.New("version cannot be empty")
		}
		o.version = version
		return nil
	}
}

// WithTimeouts 设置启动与停止超时
func WithTimeouts(start, stop time.Duration) Option {
	return func(o *options) error {
		o.startTimeout = start
		o.stopTimeout = stop
		return nil
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              注入选项
// ════════════════════════════════════════════════════════════════════════════

// WithEngine 替换 P2P 引擎
func WithEngine(engine interfaces.Engine) Option {
	return func(o *options) error {
		if engine == nil {
			return errors.New("engine is nil")
		}
		o.engine = engine
		return nil
	}
}

// WithCredentialBackend 使用指定的凭据后端，跳过平台选择
func WithCredentialBackend(backend interfaces.CredentialBackend) Option {
	return func(o *options) error {
		if backend == nil {
			return errors.New("credential backend is nil")
		}
		o.factory = keyring.StaticFactory(backend)
		return nil
	}
}

// WithCredentialFactory 使用自定义凭据后端工厂
//
// 工厂只在第一次凭据操作时调用一次；失败结果是粘滞的。
func WithCredentialFactory(factory func() (interfaces.CredentialBackend, error)) Option {
	return func(o *options) error {
		if factory == nil {
			return errors.New("credential factory is nil")
		}
		o.factory = factory
		return nil
	}
}

// WithFxOptions 追加 fx 选项（高级用法）
func WithFxOptions(opts ...fx.Option) Option {
	return func(o *options) error {
		o.fxOptions = append(o.fxOptions, opts...)
		return nil
	}
}
