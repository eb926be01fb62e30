package host

import (
	"time"

	"github.com/libp2p/go-libp2p"
	"github.com/libp2p/go-libp2p/p2p/discovery/mdns"
)

// 默认值
const (
	// DefaultDialTimeout mDNS 发现后自动拨号的超时
	DefaultDialTimeout = 15 * time.Second
)

type engineOptions struct {
	mdnsServiceName string
	dialTimeout     time.Duration
	extra           []libp2p.Option
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		mdnsServiceName: mdns.ServiceName,
		dialTimeout:     DefaultDialTimeout,
	}
}

// Option 引擎构造选项
type Option func(*engineOptions)

// WithMDNSServiceName 设置 mDNS 服务名
//
// 默认与其他 libp2p 实现一致（_p2p._udp），以便互相发现。
func WithMDNSServiceName(name string) Option {
	return func(o *engineOptions) {
		if name != "" {
			o.mdnsServiceName = name
		}
	}
}

// WithDialTimeout 设置自动拨号超时
func WithDialTimeout(d time.Duration) Option {
	return func(o *engineOptions) {
		if d > 0 {
			o.dialTimeout = d
		}
	}
}

// WithLibp2pOptions 追加原始 libp2p 选项
func WithLibp2pOptions(opts ...libp2p.Option) Option {
	return func(o *engineOptions) {
		o.extra = append(o.extra, opts...)
	}
}
