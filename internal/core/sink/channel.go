package sink

import (
	"context"
	"sync"

	"github.com/hhan593/SwarmDrop/pkg/interfaces"
	"github.com/hhan593/SwarmDrop/pkg/types"
)

// DefaultChannelBuffer 默认通道容量
const DefaultChannelBuffer = 64

// Channel 有界通道接收端
type Channel struct {
	ch chan types.NodeEvent

	mu       sync.RWMutex
	closed   bool
	done     chan struct{}
	doneOnce sync.Once
}

var _ interfaces.EventSink = (*Channel)(nil)

// NewChannel 创建通道接收端
func NewChannel(buffer int) *Channel {
	if buffer <= 0 {
		buffer = DefaultChannelBuffer
	}
	return &Channel{
		ch:   make(chan types.NodeEvent, buffer),
		done: make(chan struct{}),
	}
}

// Events 返回只读事件通道，Close 后关闭
func (c *Channel) Events() <-chan types.NodeEvent {
	return c.ch
}

// Send 投递事件，通道满时阻塞直到 ctx 结束或接收端关闭
func (c *Channel) Send(ctx context.Context, ev types.NodeEvent) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrSinkUnreachable
	}

	select {
	case c.ch <- ev:
		return nil
	case <-c.done:
		return ErrSinkUnreachable
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close 关闭接收端，幂等
func (c *Channel) Close() error {
	// 先唤醒阻塞中的 Send，使其释放读锁
	c.doneOnce.Do(func() { close(c.done) })

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.ch)
	}
	return nil
}
