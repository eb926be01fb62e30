package eventbridge

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hhan593/SwarmDrop/internal/core/metrics"
	"github.com/hhan593/SwarmDrop/internal/core/sink"
	"github.com/hhan593/SwarmDrop/internal/util/logger"
	"github.com/hhan593/SwarmDrop/pkg/interfaces"
	"github.com/hhan593/SwarmDrop/pkg/types"
)

var log = logger.Logger("core/eventbridge")

// DefaultSendTimeout 单个事件的默认投递超时
const DefaultSendTimeout = 5 * time.Second

// ============================================================================
//                              选项
// ============================================================================

type options struct {
	sendTimeout time.Duration
	metrics     *metrics.Metrics
	label       string
}

// Option Bridge 选项
type Option func(*options)

// WithSendTimeout 设置单个事件的投递超时
func WithSendTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.sendTimeout = d
		}
	}
}

// WithMetrics 设置指标记录器
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithLabel 设置日志标签（通常是会话 ID）
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// ============================================================================
//                              Bridge
// ============================================================================

// Stats 转发统计
type Stats struct {
	Forwarded uint64
	Failed    uint64
}

// Bridge 事件转发器
type Bridge struct {
	events <-chan types.NodeEvent
	sink   interfaces.EventSink
	opts   options

	forwarded atomic.Uint64
	failed    atomic.Uint64
	done      chan struct{}
}

// Start 启动转发 goroutine
//
// sink 为 nil 时事件仍被消费，但全部计为投递失败。
func Start(events <-chan types.NodeEvent, s interfaces.EventSink, opts ...Option) *Bridge {
	o := options{sendTimeout: DefaultSendTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	if s == nil {
		s = sink.Func(nil)
	}

	b := &Bridge{
		events: events,
		sink:   s,
		opts:   o,
		done:   make(chan struct{}),
	}
	go b.run()
	return b
}

func (b *Bridge) run() {
	defer close(b.done)

	log.Debug("事件桥接已启动", "session", b.opts.label)
	for ev := range b.events {
		if err := b.forward(ev); err != nil {
			b.failed.Add(1)
			b.opts.metrics.SinkFailure()
			log.Warn("事件投递失败",
				"session", b.opts.label,
				"event", ev.Type,
				"error", err)
			continue
		}
		b.forwarded.Add(1)
		b.opts.metrics.EventForwarded(ev.Type)
	}
	log.Debug("事件桥接已结束",
		"session", b.opts.label,
		"forwarded", b.forwarded.Load(),
		"failed", b.failed.Load())
}

// forward 投递单个事件；接收端 panic 视为投递失败
func (b *Bridge) forward(ev types.NodeEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sink panic: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), b.opts.sendTimeout)
	defer cancel()
	return b.sink.Send(ctx, ev)
}

// Done 在事件通道关闭且最后一个事件处理完毕后关闭
func (b *Bridge) Done() <-chan struct{} {
	return b.done
}

// Wait 等待 Bridge 退出或 ctx 结束
func (b *Bridge) Wait(ctx context.Context) error {
	select {
	case <-b.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stats 返回转发统计
func (b *Bridge) Stats() Stats {
	return Stats{
		Forwarded: b.forwarded.Load(),
		Failed:    b.failed.Load(),
	}
}
