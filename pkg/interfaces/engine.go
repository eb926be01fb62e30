package interfaces

import (
	"context"

	"github.com/hhan593/SwarmDrop/pkg/types"
)

// Engine P2P 引擎
//
// 会话层把引擎当作不透明的 "客户端 + 事件源" 构造器。
type Engine interface {
	// Construct 在给定身份与配置下启动引擎
	//
	// 返回的事件通道由调用方独占消费；引擎完全停止后关闭该通道。
	// 构造失败时不得留下任何运行中的资源。
	Construct(ctx context.Context, id Identity, cfg types.SessionConfig) (Client, <-chan types.NodeEvent, error)
}

// Client 引擎客户端句柄
//
// 可被多个持有者共享；只有会话在移除时调用 Shutdown。
type Client interface {
	// LocalPeer 返回本地节点 ID
	LocalPeer() types.PeerID

	// Shutdown 通知引擎停止
	//
	// 幂等。返回后引擎会在有限时间内关闭事件通道。
	Shutdown() error

	// Done 在引擎完全停止后关闭
	Done() <-chan struct{}
}
