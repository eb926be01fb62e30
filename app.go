package swarmdrop

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/hhan593/SwarmDrop/config"
	"github.com/hhan593/SwarmDrop/internal/app"
	"github.com/hhan593/SwarmDrop/internal/core/identity"
	"github.com/hhan593/SwarmDrop/internal/core/pairing"
	"github.com/hhan593/SwarmDrop/internal/core/session"
	"github.com/hhan593/SwarmDrop/internal/util/logger"
	"github.com/hhan593/SwarmDrop/pkg/interfaces"
	"github.com/hhan593/SwarmDrop/pkg/types"
)

var log = logger.Logger("swarmdrop")

// Status 会话状态快照
type Status = session.Status

// PairingManager 配对子管理器
type PairingManager = pairing.Manager

// ════════════════════════════════════════════════════════════════════════════
//                              App
// ════════════════════════════════════════════════════════════════════════════

// App SwarmDrop 应用上下文
//
// 持有配置、指标、凭据存储、身份与会话管理器。
// 进程内通常只创建一个 App，宿主命令全部经由它执行。
type App struct {
	rt     *app.Runtime
	waiter *app.Waiter
}

// New 创建应用上下文
//
// 不会初始化凭据存储，也不会启动节点。
func New(opts ...Option) (*App, error) {
	o := newOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}

	rt, err := app.NewBootstrap(o.config, o.bootstrapOptions()...).Build()
	if err != nil {
		return nil, err
	}

	log.Debug("应用上下文已创建", "version", o.version)
	return &App{rt: rt, waiter: app.NewWaiter(rt)}, nil
}

// Config 返回当前配置
func (a *App) Config() *config.Config {
	return a.rt.Config
}

// ════════════════════════════════════════════════════════════════════════════
//                              会话
// ════════════════════════════════════════════════════════════════════════════

// Start 以已注册的身份启动节点会话
//
// 没有身份时返回 ErrIdentityNotRegistered。
// 已有会话时新会话替换旧会话；引擎构造失败时旧会话保持不变。
func (a *App) Start(ctx context.Context, sink interfaces.EventSink) (Status, error) {
	if err := a.checkOpen(); err != nil {
		return Status{}, err
	}

	id, err := a.currentIdentity()
	if err != nil {
		return Status{}, err
	}
	return a.rt.Sessions.Start(ctx, id, sink)
}

// Shutdown 关闭当前会话
//
// 没有会话时返回 nil，重复调用无副作用。
func (a *App) Shutdown(ctx context.Context) error {
	if err := a.checkOpen(); err != nil {
		return err
	}
	return a.rt.Sessions.Shutdown(ctx)
}

// Status 返回当前会话状态
func (a *App) Status() Status {
	return a.rt.Sessions.Status()
}

// WithPairing 在当前会话的配对管理器上执行 fn
//
// 没有会话时返回 ErrNoActiveSession。
func (a *App) WithPairing(fn func(*PairingManager) error) error {
	if err := a.checkOpen(); err != nil {
		return err
	}
	return a.rt.Sessions.WithPairing(fn)
}

// ════════════════════════════════════════════════════════════════════════════
//                              凭据
// ════════════════════════════════════════════════════════════════════════════

// CredentialSet 写入（覆盖）凭据
func (a *App) CredentialSet(key, value string) error {
	if err := a.checkOpen(); err != nil {
		return err
	}
	return a.rt.Credentials.Set(key, value)
}

// CredentialGet 读取凭据
//
// 条目不存在时返回 ("", false, nil)。
func (a *App) CredentialGet(key string) (string, bool, error) {
	if err := a.checkOpen(); err != nil {
		return "", false, err
	}
	return a.rt.Credentials.Get(key)
}

// CredentialDelete 删除凭据
//
// 条目不存在视为成功。
func (a *App) CredentialDelete(key string) error {
	if err := a.checkOpen(); err != nil {
		return err
	}
	return a.rt.Credentials.Delete(key)
}

// CredentialBackend 返回已安装的凭据后端类型
//
// 会触发凭据存储初始化。
func (a *App) CredentialBackend() (string, error) {
	if err := a.checkOpen(); err != nil {
		return "", err
	}
	return a.rt.Credentials.Kind()
}

// ════════════════════════════════════════════════════════════════════════════
//                              身份
// ════════════════════════════════════════════════════════════════════════════

// GenerateIdentity 生成并保存新身份，替换当前身份
//
// 返回 protobuf 编码的私钥与设备 ID。
func (a *App) GenerateIdentity() ([]byte, types.PeerID, error) {
	if err := a.checkOpen(); err != nil {
		return nil, types.EmptyPeerID, err
	}
	return a.rt.Identity.Generate()
}

// RegisterIdentity 安装外部提供的密钥对并返回设备 ID
//
// 新身份在下一次 Start 时生效。
func (a *App) RegisterIdentity(keypair []byte) (types.PeerID, error) {
	if err := a.checkOpen(); err != nil {
		return types.EmptyPeerID, err
	}
	return a.rt.Identity.Register(keypair)
}

// LoadOrCreateIdentity 加载已保存的身份，不存在时生成
func (a *App) LoadOrCreateIdentity() (types.PeerID, error) {
	if err := a.checkOpen(); err != nil {
		return types.EmptyPeerID, err
	}
	id, err := a.rt.Identity.LoadOrCreate()
	if err != nil {
		return types.EmptyPeerID, err
	}
	return id.PeerID(), nil
}

// PeerID 返回设备 ID
//
// 有活跃会话时返回会话使用的 ID，否则返回已注册身份的 ID。
func (a *App) PeerID() (types.PeerID, error) {
	if st := a.rt.Sessions.Status(); st.Active {
		return st.PeerID, nil
	}
	id, err := a.currentIdentity()
	if err != nil {
		return types.EmptyPeerID, err
	}
	return id.PeerID(), nil
}

// currentIdentity 返回内存中的身份，没有时从凭据存储加载
func (a *App) currentIdentity() (*identity.Identity, error) {
	id, err := a.rt.Identity.Current()
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, identity.ErrIdentityNotRegistered) {
		return nil, err
	}
	return a.rt.Identity.Load()
}

// ════════════════════════════════════════════════════════════════════════════
//                              指标与关闭
// ════════════════════════════════════════════════════════════════════════════

// MetricsHandler 返回 Prometheus 处理器，指标禁用时返回 nil
func (a *App) MetricsHandler() http.Handler {
	if a.rt.Metrics == nil {
		return nil
	}
	return a.rt.Metrics.Handler()
}

// Wait 阻塞直到收到 SIGINT/SIGTERM 或 ctx 结束，然后关闭应用
//
// Close 被调用时 Wait 也会返回。
func (a *App) Wait(ctx context.Context) error {
	return a.waiter.Wait(ctx)
}

// Done 在应用关闭后关闭
func (a *App) Done() <-chan struct{} {
	return a.waiter.Stopped()
}

// Close 关闭会话并停止应用
//
// 多次调用只执行一次。之后的所有操作返回 ErrAppClosed。
func (a *App) Close(ctx context.Context) error {
	log.Debug("正在关闭应用")
	return a.waiter.Stop(ctx)
}

func (a *App) checkOpen() error {
	select {
	case <-a.waiter.Stopped():
		return ErrAppClosed
	default:
		return nil
	}
}
