package interfaces

import (
	"context"

	"github.com/hhan593/SwarmDrop/pkg/types"
)

// EventSink 事件接收端
//
// 宿主提供的有序事件流出口。接收端关闭后 Send 返回
// sink.ErrSinkUnreachable。
type EventSink interface {
	// Send 投递一个事件，受 ctx 限时
	Send(ctx context.Context, ev types.NodeEvent) error
}
