package sink

import (
	"context"

	"github.com/hhan593/SwarmDrop/pkg/types"
)

// Func 把函数适配为接收端
type Func func(ctx context.Context, ev types.NodeEvent) error

// Send 调用函数本身
func (f Func) Send(ctx context.Context, ev types.NodeEvent) error {
	if f == nil {
		return ErrSinkUnreachable
	}
	return f(ctx, ev)
}
