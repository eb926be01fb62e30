package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hhan593/SwarmDrop/internal/util/logger"
	"github.com/hhan593/SwarmDrop/pkg/interfaces"
	"github.com/hhan593/SwarmDrop/pkg/types"
)

var log = logger.Logger("core/sink")

// DefaultWriteTimeout 单帧写超时（ctx 没有截止时间时使用）
const DefaultWriteTimeout = 5 * time.Second

// WebSocket 把事件以 JSON 文本帧写入 WebSocket 连接
//
// 同一时刻只有一个写者；写失败后接收端进入关闭状态。
type WebSocket struct {
	conn *websocket.Conn

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

var _ interfaces.EventSink = (*WebSocket)(nil)

// NewWebSocket 包装已建立的连接
//
// 启动读循环处理对端的关闭帧与 ping；对端断开后接收端自动关闭。
func NewWebSocket(conn *websocket.Conn) *WebSocket {
	s := &WebSocket{
		conn: conn,
		done: make(chan struct{}),
	}
	go s.readLoop()
	return s
}

// readLoop 丢弃对端发来的数据帧，直到连接断开
func (s *WebSocket) readLoop() {
	for {
		if _, _, err := s.conn.NextReader(); err != nil {
			log.Debug("websocket 对端断开", "remote", s.conn.RemoteAddr(), "error", err)
			_ = s.Close()
			return
		}
	}
}

// Send 写入一个事件帧
func (s *WebSocket) Send(ctx context.Context, ev types.NodeEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("sink: encode event: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSinkUnreachable
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(DefaultWriteTimeout)
	}
	if err := s.conn.SetWriteDeadline(deadline); err != nil {
		s.closeLocked()
		return fmt.Errorf("%w: %w", ErrSinkUnreachable, err)
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.closeLocked()
		return fmt.Errorf("%w: %w", ErrSinkUnreachable, err)
	}
	return nil
}

// Done 在接收端关闭后关闭
func (s *WebSocket) Done() <-chan struct{} {
	return s.done
}

// Close 发送关闭帧并关闭连接，幂等
func (s *WebSocket) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeLocked()
}

func (s *WebSocket) closeLocked() error {
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.done)

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	return s.conn.Close()
}

// Upgrader HTTP 到 WebSocket 的升级器
//
// 默认只接受同源请求；CheckOrigin 可按需覆盖。
var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// Upgrade 升级 HTTP 请求并返回接收端
func Upgrade(w http.ResponseWriter, r *http.Request) (*WebSocket, error) {
	conn, err := Upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, err
	}
	return NewWebSocket(conn), nil
}
