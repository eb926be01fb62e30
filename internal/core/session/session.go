package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/hhan593/SwarmDrop/internal/core/eventbridge"
	"github.com/hhan593/SwarmDrop/internal/core/pairing"
	"github.com/hhan593/SwarmDrop/pkg/interfaces"
	"github.com/hhan593/SwarmDrop/pkg/types"
)

// Session 一个活跃会话
//
// 拥有客户端句柄、配对子管理器与事件桥接，随 Close 一起释放。
type Session struct {
	id        string
	peerID    types.PeerID
	startedAt time.Time

	client  interfaces.Client
	pairing *pairing.Manager
	bridge  *eventbridge.Bridge

	closeOnce sync.Once
	closed    chan struct{}
	closeErr  error
}

// ID 返回会话 ID
func (s *Session) ID() string {
	return s.id
}

// PeerID 返回本地节点 ID
func (s *Session) PeerID() types.PeerID {
	return s.peerID
}

// StartedAt 返回启动时间
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// Client 返回客户端句柄
func (s *Session) Client() interfaces.Client {
	return s.client
}

// Pairing 返回配对子管理器
func (s *Session) Pairing() *pairing.Manager {
	return s.pairing
}

// Bridge 返回事件桥接
func (s *Session) Bridge() *eventbridge.Bridge {
	return s.bridge
}

// Close 关闭会话
//
// 依次关闭配对子管理器、停止客户端，然后等待事件桥接排空或 ctx 结束。
// 幂等：重复调用等待首次关闭完成并返回同一结果。
func (s *Session) Close(ctx context.Context) error {
	s.closeOnce.Do(func() {
		defer close(s.closed)

		var errs error
		errs = multierr.Append(errs, s.pairing.Close())
		errs = multierr.Append(errs, s.client.Shutdown())
		errs = multierr.Append(errs, s.bridge.Wait(ctx))
		s.closeErr = errs

		if errs != nil {
			log.Warn("会话关闭出错", "session", s.id, "error", errs)
		} else {
			log.Info("会话已关闭", "session", s.id, "peerID", s.peerID.ShortString())
		}
	})

	<-s.closed
	return s.closeErr
}
