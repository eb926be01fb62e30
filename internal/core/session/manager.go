package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/hhan593/SwarmDrop/config"
	"github.com/hhan593/SwarmDrop/internal/core/eventbridge"
	"github.com/hhan593/SwarmDrop/internal/core/metrics"
	"github.com/hhan593/SwarmDrop/internal/core/pairing"
	"github.com/hhan593/SwarmDrop/internal/util/logger"
	"github.com/hhan593/SwarmDrop/pkg/interfaces"
	"github.com/hhan593/SwarmDrop/pkg/types"
)

var log = logger.Logger("core/session")

// Config 会话管理器配置
type Config struct {
	Node   config.NodeConfig
	Bridge config.BridgeConfig

	// Version 写入代理描述的版本号
	Version string
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Node:    config.DefaultNodeConfig(),
		Bridge:  config.DefaultBridgeConfig(),
		Version: "dev",
	}
}

// Status 会话状态快照
type Status struct {
	Active    bool              `json:"active"`
	SessionID string            `json:"sessionId,omitempty"`
	PeerID    types.PeerID      `json:"peerId,omitempty"`
	StartedAt time.Time         `json:"startedAt,omitempty"`
	Events    eventbridge.Stats `json:"events"`
}

// Option 管理器选项
type Option func(*Manager)

// WithClock 设置时钟（测试用）
func WithClock(c clock.Clock) Option {
	return func(m *Manager) {
		m.clock = c
	}
}

// WithMetrics 设置指标记录器
func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *Manager) {
		m.metrics = mt
	}
}

// WithHostname 设置主机名来源（测试用）
func WithHostname(fn func() (string, error)) Option {
	return func(m *Manager) {
		m.hostname = fn
	}
}

// Manager 会话管理器
type Manager struct {
	engine   interfaces.Engine
	cfg      Config
	clock    clock.Clock
	metrics  *metrics.Metrics
	hostname func() (string, error)

	// mu 只保护会话槽，引擎构造与会话关闭都在锁外进行
	mu      sync.Mutex
	current *Session
}

// NewManager 创建会话管理器
func NewManager(engine interfaces.Engine, cfg Config, opts ...Option) *Manager {
	m := &Manager{
		engine: engine,
		cfg:    cfg,
		clock:  clock.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start 启动新会话并替换当前会话
//
// 引擎构造失败时返回 ErrEngineConstructionFailed，当前会话保持不变。
// 成功时被替换的旧会话在新会话安装后关闭。
func (m *Manager) Start(ctx context.Context, id interfaces.Identity, sink interfaces.EventSink) (Status, error) {
	if id == nil {
		return Status{}, ErrNilIdentity
	}

	peerID := id.PeerID()
	sc := BuildSessionConfig(m.cfg.Node, m.cfg.Version, m.hostname)

	client, events, err := m.engine.Construct(ctx, id, sc)
	if err == nil && (client == nil || events == nil) {
		err = errors.New("engine returned nil client or event channel")
		if client != nil {
			_ = client.Shutdown()
		}
	}
	if err != nil {
		m.metrics.SessionStartFailed()
		log.Error("引擎构造失败", "peerID", peerID.ShortString(), "error", err)
		return Status{}, fmt.Errorf("%w: %w", ErrEngineConstructionFailed, err)
	}

	sessionID := uuid.NewString()
	s := &Session{
		id:        sessionID,
		peerID:    peerID,
		startedAt: m.clock.Now(),
		client:    client,
		pairing:   pairing.New(client, peerID),
		bridge: eventbridge.Start(events, sink,
			eventbridge.WithSendTimeout(m.cfg.Bridge.SendTimeout),
			eventbridge.WithMetrics(m.metrics),
			eventbridge.WithLabel(sessionID),
		),
		closed: make(chan struct{}),
	}

	m.mu.Lock()
	old := m.current
	m.current = s
	m.mu.Unlock()

	m.metrics.SessionStarted()
	m.metrics.SetSessionActive(true)
	log.Info("会话已启动",
		"session", sessionID,
		"peerID", peerID.ShortString(),
		"agent", sc.AgentVersion)

	if old != nil {
		log.Info("替换旧会话", "old", old.id, "new", sessionID)
		drainCtx, cancel := m.drainContext(context.Background())
		_ = old.Close(drainCtx)
		cancel()
	}

	return statusOf(s), nil
}

// Shutdown 移除并关闭当前会话
//
// 没有会话时返回 nil。
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	s := m.current
	m.current = nil
	m.mu.Unlock()

	if s == nil {
		return nil
	}
	m.metrics.SetSessionActive(false)

	drainCtx, cancel := m.drainContext(ctx)
	defer cancel()
	return s.Close(drainCtx)
}

// drainContext 在 ctx 之上叠加 DrainTimeout
func (m *Manager) drainContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.cfg.Bridge.DrainTimeout > 0 {
		return context.WithTimeout(ctx, m.cfg.Bridge.DrainTimeout)
	}
	return context.WithCancel(ctx)
}

// WithPairing 持锁调用 fn，传入活跃会话的配对子管理器
//
// fn 不得调用 Manager 的其他方法。
func (m *Manager) WithPairing(fn func(*pairing.Manager) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return ErrNoActiveSession
	}
	return fn(m.current.pairing)
}

// Active 是否有活跃会话
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current != nil
}

// Current 返回活跃会话
func (m *Manager) Current() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil, ErrNoActiveSession
	}
	return m.current, nil
}

// Status 返回当前状态
func (m *Manager) Status() Status {
	m.mu.Lock()
	s := m.current
	m.mu.Unlock()

	if s == nil {
		return Status{}
	}
	return statusOf(s)
}

func statusOf(s *Session) Status {
	return Status{
		Active:    true,
		SessionID: s.id,
		PeerID:    s.peerID,
		StartedAt: s.startedAt,
		Events:    s.bridge.Stats(),
	}
}
