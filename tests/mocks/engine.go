package mocks

import (
	"context"
	"sync"

	"github.com/hhan593/SwarmDrop/pkg/interfaces"
	"github.com/hhan593/SwarmDrop/pkg/types"
)

// ============================================================================
//                              MockEngine
// ============================================================================

// MockEngine 模拟 Engine 接口实现
type MockEngine struct {
	// 可覆盖的方法
	ConstructFunc func(ctx context.Context, id interfaces.Identity, cfg types.SessionConfig) (interfaces.Client, <-chan types.NodeEvent, error)

	mu      sync.Mutex
	clients []*MockClient
	configs []types.SessionConfig
}

// NewMockEngine 创建 MockEngine
func NewMockEngine() *MockEngine {
	return &MockEngine{}
}

// Construct 构造客户端与事件通道
func (m *MockEngine) Construct(ctx context.Context, id interfaces.Identity, cfg types.SessionConfig) (interfaces.Client, <-chan types.NodeEvent, error) {
	m.mu.Lock()
	m.configs = append(m.configs, cfg)
	m.mu.Unlock()

	if m.ConstructFunc != nil {
		return m.ConstructFunc(ctx, id, cfg)
	}

	c := NewMockClient(id.PeerID(), cfg.EventBuffer)
	m.mu.Lock()
	m.clients = append(m.clients, c)
	m.mu.Unlock()
	return c, c.Events, nil
}

// Clients 返回默认路径构造的全部客户端
func (m *MockEngine) Clients() []*MockClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*MockClient, len(m.clients))
	copy(out, m.clients)
	return out
}

// LastClient 返回最近构造的客户端
func (m *MockEngine) LastClient() *MockClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.clients) == 0 {
		return nil
	}
	return m.clients[len(m.clients)-1]
}

// Configs 返回每次 Construct 收到的配置
func (m *MockEngine) Configs() []types.SessionConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]types.SessionConfig, len(m.configs))
	copy(out, m.configs)
	return out
}

// ConstructCalls 返回 Construct 调用次数
func (m *MockEngine) ConstructCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.configs)
}

// ============================================================================
//                              MockClient
// ============================================================================

// MockClient 模拟 Client 接口实现
//
// Shutdown 关闭 Events 与 Done，模拟引擎停止后关闭事件通道。
type MockClient struct {
	PeerIDValue types.PeerID
	Events      chan types.NodeEvent

	// 可覆盖的方法
	ShutdownFunc func() error

	mu            sync.Mutex
	shutdownCalls int
	stopped       bool
	done          chan struct{}
}

// NewMockClient 创建 MockClient
func NewMockClient(peerID types.PeerID, buffer int) *MockClient {
	if buffer <= 0 {
		buffer = 16
	}
	return &MockClient{
		PeerIDValue: peerID,
		Events:      make(chan types.NodeEvent, buffer),
		done:        make(chan struct{}),
	}
}

// LocalPeer 返回本地节点 ID
func (m *MockClient) LocalPeer() types.PeerID {
	return m.PeerIDValue
}

// Emit 发出一个事件；客户端已停止时丢弃并返回 false
func (m *MockClient) Emit(ev types.NodeEvent) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return false
	}
	m.Events <- ev
	return true
}

// Shutdown 停止客户端，幂等
func (m *MockClient) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.shutdownCalls++
	if m.stopped {
		return nil
	}
	m.stopped = true
	close(m.Events)
	close(m.done)

	if m.ShutdownFunc != nil {
		return m.ShutdownFunc()
	}
	return nil
}

// Done 在客户端停止后关闭
func (m *MockClient) Done() <-chan struct{} {
	return m.done
}

// ShutdownCalls 返回 Shutdown 调用次数
func (m *MockClient) ShutdownCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shutdownCalls
}

// Stopped 是否已停止
func (m *MockClient) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}
