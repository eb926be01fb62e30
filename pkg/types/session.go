package types

import "fmt"

// ============================================================================
//                              SessionConfig - 会话配置
// ============================================================================

// Features 引擎功能开关
type Features struct {
	// MDNS 局域网发现
	MDNS bool

	// RelayClient 通过中继建立连接
	RelayClient bool

	// HolePunching NAT 打洞（DCUtR）
	HolePunching bool

	// AutoNAT 可达性检测
	AutoNAT bool
}

// SessionConfig 一次会话的引擎配置
//
// 每次 Start 时重新构建，不持久化。
type SessionConfig struct {
	// ProtocolVersion 协议版本字符串，例如 /swarmdrop/1.0.0
	ProtocolVersion string

	// AgentVersion 代理描述，例如 swarmdrop/0.1.0 (linux; amd64; host)
	AgentVersion string

	// ListenAddrs 监听地址（multiaddr 字符串）
	ListenAddrs []string

	// EventBuffer 事件通道容量
	EventBuffer int

	// Features 功能开关
	Features Features
}

// Validate 校验会话配置
func (c SessionConfig) Validate() error {
	if c.ProtocolVersion == "" {
		return fmt.Errorf("session config: empty protocol version")
	}
	if c.AgentVersion == "" {
		return fmt.Errorf("session config: empty agent version")
	}
	if c.EventBuffer <= 0 {
		return fmt.Errorf("session config: event buffer must be positive, got %d", c.EventBuffer)
	}
	return nil
}
