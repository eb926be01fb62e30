package sink

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/multierr"

	"github.com/hhan593/SwarmDrop/pkg/interfaces"
	"github.com/hhan593/SwarmDrop/pkg/types"
)

// Broadcast 把事件依次投递给所有成员
//
// 返回 ErrSinkUnreachable 的成员被自动移除；其余错误合并后返回。
type Broadcast struct {
	mu      sync.RWMutex
	nextID  uint64
	members []member
}

type member struct {
	id   uint64
	sink interfaces.EventSink
}

var _ interfaces.EventSink = (*Broadcast)(nil)

// NewBroadcast 创建广播接收端
func NewBroadcast(members ...interfaces.EventSink) *Broadcast {
	b := &Broadcast{}
	for _, m := range members {
		b.Add(m)
	}
	return b
}

// Add 添加成员，返回移除函数（幂等）
func (b *Broadcast) Add(s interfaces.EventSink) (remove func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.members = append(b.members, member{id: id, sink: s})
	return func() { b.remove(id) }
}

func (b *Broadcast) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, m := range b.members {
		if m.id == id {
			b.members = append(b.members[:i], b.members[i+1:]...)
			return
		}
	}
}

// Len 返回成员数
func (b *Broadcast) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.members)
}

// Send 按添加顺序投递给每个成员
func (b *Broadcast) Send(ctx context.Context, ev types.NodeEvent) error {
	b.mu.RLock()
	members := make([]member, len(b.members))
	copy(members, b.members)
	b.mu.RUnlock()

	var errs error
	for _, m := range members {
		err := m.sink.Send(ctx, ev)
		switch {
		case err == nil:
		case errors.Is(err, ErrSinkUnreachable):
			b.remove(m.id)
		default:
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}
