package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"

	swarmdrop "github.com/hhan593/SwarmDrop"
	"github.com/hhan593/SwarmDrop/internal/core/sink"
	"github.com/hhan593/SwarmDrop/pkg/types"
)

// ═══════════════════════════════════════════════════════════════════════════
// HTTP 宿主接口
// ═══════════════════════════════════════════════════════════════════════════
//
//   GET /events   WebSocket，逐帧推送 NodeEvent（JSON）
//   GET /status   当前会话状态
//   GET /metrics  Prometheus 指标（启用时）
//
// ═══════════════════════════════════════════════════════════════════════════

// newMux 创建宿主 HTTP 路由
func newMux(a *swarmdrop.App, events *sink.Broadcast) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/events", eventsHandler(events, a.Done()))
	mux.HandleFunc("/status", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(a.Status())
	})
	if h := a.MetricsHandler(); h != nil {
		mux.Handle("/metrics", h)
	}
	return mux
}

// eventsHandler 把每个 WebSocket 连接加入广播，断开或 stop 关闭时移除
func eventsHandler(events *sink.Broadcast, stop <-chan struct{}) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := sink.Upgrade(w, r)
		if err != nil {
			log.Debug("websocket 升级失败", "remote", r.RemoteAddr, "error", err)
			return
		}

		remove := events.Add(ws)
		defer remove()
		log.Info("事件订阅者已连接", "remote", r.RemoteAddr, "subscribers", events.Len())

		select {
		case <-ws.Done():
		case <-stop:
			_ = ws.Close()
		}
		log.Info("事件订阅者已断开", "remote", r.RemoteAddr)
	})
}

// writerSink 把事件按行写成 JSON
func writerSink(w io.Writer) sink.Func {
	var mu sync.Mutex
	enc := json.NewEncoder(w)
	return func(_ context.Context, ev types.NodeEvent) error {
		mu.Lock()
		defer mu.Unlock()
		return enc.Encode(ev)
	}
}
