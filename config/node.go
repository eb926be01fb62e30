package config

import (
	"errors"
	"fmt"
	"strings"

	ma "github.com/multiformats/go-multiaddr"
)

// 默认值
const (
	// DefaultProtocolVersion 默认协议版本
	DefaultProtocolVersion = "/swarmdrop/1.0.0"

	// DefaultEventBuffer 引擎事件通道默认容量
	DefaultEventBuffer = 256
)

// NodeConfig 引擎与会话配置
//
// 每次 Start 时由此构建一份新的 types.SessionConfig。
type NodeConfig struct {
	// ProtocolVersion 协议版本字符串
	ProtocolVersion string `json:"protocol_version" koanf:"protocol_version"`

	// ListenAddrs 监听地址（multiaddr）
	ListenAddrs []string `json:"listen_addrs" koanf:"listen_addrs"`

	// EventBuffer 引擎事件通道容量
	// 桥接不额外缓冲，通道满时引擎侧阻塞
	EventBuffer int `json:"event_buffer" koanf:"event_buffer"`

	// EnableMDNS 局域网发现
	EnableMDNS bool `json:"enable_mdns" koanf:"enable_mdns"`

	// EnableRelayClient 中继客户端
	EnableRelayClient bool `json:"enable_relay_client" koanf:"enable_relay_client"`

	// EnableHolePunching NAT 打洞
	EnableHolePunching bool `json:"enable_hole_punching" koanf:"enable_hole_punching"`

	// EnableAutoNAT 可达性检测
	EnableAutoNAT bool `json:"enable_autonat" koanf:"enable_autonat"`
}

// DefaultNodeConfig 返回默认引擎配置
func DefaultNodeConfig() NodeConfig {
	return NodeConfig{
		ProtocolVersion: DefaultProtocolVersion,
		ListenAddrs: []string{
			"/ip4/0.0.0.0/tcp/0",
			"/ip4/0.0.0.0/udp/0/quic-v1",
			"/ip6/::/tcp/0",
			"/ip6/::/udp/0/quic-v1",
		},
		EventBuffer:        DefaultEventBuffer,
		EnableMDNS:         true,
		EnableRelayClient:  true,
		EnableHolePunching: true,
		EnableAutoNAT:      true,
	}
}

// Validate 验证引擎配置
func (c NodeConfig) Validate() error {
	if !strings.HasPrefix(c.ProtocolVersion, "/") {
		return fmt.Errorf("protocol_version must start with '/', got %q", c.ProtocolVersion)
	}
	if c.EventBuffer <= 0 {
		return errors.New("event_buffer must be positive")
	}
	for _, addr := range c.ListenAddrs {
		if _, err := ma.NewMultiaddr(addr); err != nil {
			return fmt.Errorf("invalid listen addr %q: %w", addr, err)
		}
	}
	return nil
}

// WithListenAddrs 设置监听地址
func (c NodeConfig) WithListenAddrs(addrs ...string) NodeConfig {
	c.ListenAddrs = addrs
	return c
}

// WithMDNS 设置是否启用 mDNS
func (c NodeConfig) WithMDNS(enable bool) NodeConfig {
	c.EnableMDNS = enable
	return c
}
