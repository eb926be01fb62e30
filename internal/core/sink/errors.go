package sink

import "errors"

// ErrSinkUnreachable 接收端已关闭或不可达
var ErrSinkUnreachable = errors.New("sink: unreachable")
