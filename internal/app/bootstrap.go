// Package app 提供 SwarmDrop 应用编排层
//
// app 包负责：
// - fx 模块组装
// - 依赖注入协调
// - 生命周期管理
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hhan593/SwarmDrop/config"
	"github.com/hhan593/SwarmDrop/internal/core/identity"
	"github.com/hhan593/SwarmDrop/internal/core/keyring"
	"github.com/hhan593/SwarmDrop/internal/core/metrics"
	"github.com/hhan593/SwarmDrop/internal/core/session"
	"github.com/hhan593/SwarmDrop/internal/util/logger"
	"github.com/hhan593/SwarmDrop/pkg/interfaces"
)

var log = logger.Logger("app")

// ErrAlreadyBuilt Bootstrap 只能构建一次
var ErrAlreadyBuilt = errors.New("bootstrap already built")

// Bootstrap 应用引导程序
//
// Bootstrap 负责：
// - 解析配置
// - 组装 fx 模块
// - 管理应用生命周期
type Bootstrap struct {
	config  *config.Config
	version string

	// 可选注入（测试或嵌入方使用）
	engine    interfaces.Engine
	factory   keyring.Factory
	fxOptions []fx.Option

	startTimeout time.Duration
	stopTimeout  time.Duration

	fxApp   *fx.App
	logFile io.Closer

	// 这些组件在 fx 中构建，Build 把它们取出放进 Runtime。
	sessions    *session.Manager
	credentials *keyring.Gateway
	store       *keyring.Bootstrap
	identities  *identity.Provider
	metrics     *metrics.Metrics
}

// NewBootstrap 创建引导程序
func NewBootstrap(cfg *config.Config, opts ...BootstrapOption) *Bootstrap {
	b := &Bootstrap{
		config:       cfg,
		startTimeout: DefaultStartTimeout,
		stopTimeout:  DefaultStopTimeout,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.config == nil {
		b.config = config.NewConfig()
	}
	return b
}

// Build 构建并启动应用运行时
//
// 构建只组装依赖：凭据存储与 P2P 主机都延迟到第一次使用时才创建。
func (b *Bootstrap) Build() (*Runtime, error) {
	if b.fxApp != nil {
		return nil, ErrAlreadyBuilt
	}

	if err := b.config.Validate(); err != nil {
		return nil, fmt.Errorf("配置无效: %w", err)
	}

	// 应用日志配置（必须在所有模块初始化之前）
	if err := b.setupLogging(); err != nil {
		return nil, fmt.Errorf("设置日志失败: %w", err)
	}

	b.fxApp = fx.New(
		fx.Options(b.setupModules()...),
		fx.WithLogger(b.fxLogger),
		fx.Invoke(func(
			sm *session.Manager,
			gw *keyring.Gateway,
			bs *keyring.Bootstrap,
			ip *identity.Provider,
			mt *metrics.Metrics,
		) {
			b.sessions = sm
			b.credentials = gw
			b.store = bs
			b.identities = ip
			b.metrics = mt
		}),
	)
	if err := b.fxApp.Err(); err != nil {
		b.closeLogFile()
		return nil, fmt.Errorf("组装模块失败: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.startTimeout)
	defer cancel()

	if err := b.fxApp.Start(ctx); err != nil {
		b.closeLogFile()
		return nil, fmt.Errorf("启动应用失败: %w", err)
	}

	log.Debug("应用已组装", "version", b.version, "metrics", b.metrics != nil)

	return &Runtime{
		Config:      b.config,
		Sessions:    b.sessions,
		Credentials: b.credentials,
		Store:       b.store,
		Identity:    b.identities,
		Metrics:     b.metrics,
		stop:        b.Stop,
	}, nil
}

// Stop 停止应用
//
// 触发 fx OnStop：先关闭活跃会话，再释放凭据后端。
func (b *Bootstrap) Stop(ctx context.Context) error {
	if b.fxApp == nil {
		return nil
	}

	stopCtx, cancel := context.WithTimeout(ctx, b.stopTimeout)
	defer cancel()

	err := b.fxApp.Stop(stopCtx)
	return multierr.Append(err, b.closeLogFile())
}

// setupModules 组装所有 fx 模块
func (b *Bootstrap) setupModules() []fx.Option {
	modules := []fx.Option{
		// 配置（Tier 0）
		fx.Supply(b.config),
		fx.Supply(fx.Annotated{Name: "version", Target: b.version}),
	}

	if b.factory != nil {
		factory := b.factory
		modules = append(modules, fx.Provide(func() keyring.Factory { return factory }))
	}

	// 引擎：调用方注入时替换 libp2p 引擎
	if b.engine != nil {
		engine := b.engine
		modules = append(modules, fx.Provide(func() interfaces.Engine { return engine }))
	} else {
		modules = append(modules, EngineModules())
	}

	modules = append(modules, CoreModules())
	modules = append(modules, b.fxOptions...)
	return modules
}

// fxLogger 返回 fx 事件日志
//
// 默认静默，避免干扰应用日志。
func (b *Bootstrap) fxLogger() fxevent.Logger {
	if !b.config.Log.FxEvents {
		return &fxevent.ZapLogger{Logger: zap.NewNop()}
	}
	zl, err := zap.NewDevelopment()
	if err != nil {
		return &fxevent.ZapLogger{Logger: zap.NewNop()}
	}
	return &fxevent.ZapLogger{Logger: zl}
}

// setupLogging 配置日志输出
//
// 如果指定了日志文件，将所有日志重定向到文件
func (b *Bootstrap) setupLogging() error {
	if lvl := b.config.Log.DefaultLevel; lvl != "" {
		if level, ok := logger.ParseLevel(lvl); ok {
			logger.SetGlobalLevel(level)
		}
	}

	if b.config.Log.File == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(b.config.Log.File), 0o700); err != nil {
		return fmt.Errorf("创建日志目录失败: %w", err)
	}

	// 打开日志文件（追加模式）
	file, err := os.OpenFile(b.config.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("打开日志文件失败: %w", err)
	}

	logger.SetOutput(file)
	b.logFile = file

	log.Info("日志文件初始化成功", "path", b.config.Log.File)
	return nil
}

func (b *Bootstrap) closeLogFile() error {
	if b.logFile == nil {
		return nil
	}
	logger.SetOutput(os.Stderr)
	err := b.logFile.Close()
	b.logFile = nil
	return err
}
