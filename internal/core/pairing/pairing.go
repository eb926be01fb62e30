// Package pairing 提供配对子管理器
//
// Manager 由会话持有，与会话共享同一个引擎客户端句柄，
// 并随会话一起关闭。配对握手协议本身不在本包范围内。
package pairing

import (
	"errors"
	"sync/atomic"

	"github.com/hhan593/SwarmDrop/internal/util/logger"
	"github.com/hhan593/SwarmDrop/pkg/interfaces"
	"github.com/hhan593/SwarmDrop/pkg/types"
)

var log = logger.Logger("core/pairing")

// ErrClosed 配对管理器已关闭
var ErrClosed = errors.New("pairing: manager closed")

// Manager 配对子管理器
type Manager struct {
	client    interfaces.Client
	localPeer types.PeerID
	closed    atomic.Bool
}

// New 创建配对子管理器
func New(client interfaces.Client, localPeer types.PeerID) *Manager {
	return &Manager{
		client:    client,
		localPeer: localPeer,
	}
}

// LocalPeer 返回本地节点 ID
func (m *Manager) LocalPeer() types.PeerID {
	return m.localPeer
}

// Client 返回引擎客户端句柄
//
// 管理器从不关闭该句柄，关闭由所属会话负责。
func (m *Manager) Client() interfaces.Client {
	return m.client
}

// Closed 是否已关闭
func (m *Manager) Closed() bool {
	return m.closed.Load()
}

// Close 关闭管理器，幂等
func (m *Manager) Close() error {
	if m.closed.Swap(true) {
		return nil
	}
	log.Debug("配对管理器已关闭", "peerID", m.localPeer.ShortString())
	return nil
}

// EnsureOpen 管理器已关闭时返回 ErrClosed
func (m *Manager) EnsureOpen() error {
	if m.closed.Load() {
		return ErrClosed
	}
	return nil
}
