// Package testutil 提供测试辅助函数
package testutil

import (
	"context"
	"testing"
	"time"
)

// WaitForCondition 等待条件满足或超时
//
// 参数：
//   - t: 测试对象
//   - timeout: 超时时间
//   - interval: 检查间隔
//   - condition: 条件函数，返回 true 表示条件满足
//
// 返回：条件是否满足（超时返回 false）
func WaitForCondition(t testing.TB, timeout time.Duration, interval time.Duration, condition func() bool) bool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// 立即检查一次
	if condition() {
		return true
	}

	for {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
			if condition() {
				return true
			}
		}
	}
}

// Eventually 在指定时间内重试条件检查，超时则 fail 测试
//
// 使用默认间隔 10ms。
//
// 示例:
//
//	testutil.Eventually(t, time.Second, func() bool {
//	    return len(sink.Received()) == 3
//	}, "事件应全部投递")
func Eventually(t testing.TB, timeout time.Duration, condition func() bool, msg string) {
	t.Helper()

	if !WaitForCondition(t, timeout, 10*time.Millisecond, condition) {
		t.Fatalf("等待超时: %s", msg)
	}
}

// WaitClosed 等待通道关闭，超时则 fail 测试
func WaitClosed(t testing.TB, ch <-chan struct{}, timeout time.Duration, msg string) {
	t.Helper()

	select {
	case <-ch:
	case <-time.After(timeout):
		t.Fatalf("等待超时: %s", msg)
	}
}
