package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// ============================================================================
//                              信号等待
// ============================================================================

// Waiter 等待退出信号并只停止一次运行时
type Waiter struct {
	runtime  *Runtime
	stopOnce sync.Once
	stopErr  error
	stopped  chan struct{}

	// signals 测试可替换的信号源
	signals chan os.Signal
}

// NewWaiter 创建信号等待器
func NewWaiter(rt *Runtime) *Waiter {
	return &Waiter{
		runtime: rt,
		stopped: make(chan struct{}),
	}
}

// Wait 阻塞直到收到 SIGINT/SIGTERM、ctx 结束或 Stop 被调用
//
// 返回触发退出的原因；收到信号或 ctx 结束时会停止运行时。
func (w *Waiter) Wait(ctx context.Context) error {
	signals := w.signals
	if signals == nil {
		signals = make(chan os.Signal, 1)
		signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(signals)
	}

	select {
	case sig := <-signals:
		log.Info("收到退出信号", "signal", sig.String())
	case <-ctx.Done():
		log.Info("上下文结束，正在退出", "err", ctx.Err())
	case <-w.stopped:
		return w.stopErr
	}

	return w.Stop(context.Background())
}

// Stop 停止运行时，多次调用只执行一次
func (w *Waiter) Stop(ctx context.Context) error {
	w.stopOnce.Do(func() {
		defer close(w.stopped)
		if w.runtime == nil {
			return
		}
		if err := w.runtime.Stop(ctx); err != nil {
			w.stopErr = fmt.Errorf("停止运行时失败: %w", err)
		}
	})
	return w.stopErr
}

// Stopped 在运行时停止后关闭
func (w *Waiter) Stopped() <-chan struct{} {
	return w.stopped
}
