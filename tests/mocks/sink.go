package mocks

import (
	"context"
	"sync"

	"github.com/hhan593/SwarmDrop/pkg/types"
)

// MockSink 模拟 EventSink 接口实现
type MockSink struct {
	// 可覆盖的方法；返回错误的事件不计入 Received
	SendFunc func(ctx context.Context, ev types.NodeEvent) error

	mu        sync.Mutex
	received  []types.NodeEvent
	sendCalls int
}

// NewMockSink 创建 MockSink
func NewMockSink() *MockSink {
	return &MockSink{}
}

// Send 记录事件
func (m *MockSink) Send(ctx context.Context, ev types.NodeEvent) error {
	m.mu.Lock()
	m.sendCalls++
	m.mu.Unlock()

	if m.SendFunc != nil {
		if err := m.SendFunc(ctx, ev); err != nil {
			return err
		}
	}

	m.mu.Lock()
	m.received = append(m.received, ev)
	m.mu.Unlock()
	return nil
}

// Received 返回已接收事件的副本
func (m *MockSink) Received() []types.NodeEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]types.NodeEvent, len(m.received))
	copy(out, m.received)
	return out
}

// SendCalls 返回 Send 调用次数
func (m *MockSink) SendCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sendCalls
}
