package session

import (
	"fmt"
	"os"
	"runtime"

	"github.com/hhan593/SwarmDrop/config"
	"github.com/hhan593/SwarmDrop/pkg/types"
)

// AgentName 代理名称
const AgentName = "swarmdrop"

// AgentVersion 构建代理描述
//
// 格式：swarmdrop/<version> (<os>; <arch>; <hostname>)
func AgentVersion(version, goos, goarch, hostname string) string {
	if hostname == "" {
		hostname = "unknown"
	}
	return fmt.Sprintf("%s/%s (%s; %s; %s)", AgentName, version, goos, goarch, hostname)
}

// BuildSessionConfig 由节点配置与进程信息构建会话配置
//
// hostname 为 nil 时使用 os.Hostname。
func BuildSessionConfig(node config.NodeConfig, version string, hostname func() (string, error)) types.SessionConfig {
	if hostname == nil {
		hostname = os.Hostname
	}
	host, err := hostname()
	if err != nil {
		log.Debug("获取主机名失败", "error", err)
		host = ""
	}

	addrs := make([]string, len(node.ListenAddrs))
	copy(addrs, node.ListenAddrs)

	buffer := node.EventBuffer
	if buffer <= 0 {
		buffer = config.DefaultEventBuffer
	}

	return types.SessionConfig{
		ProtocolVersion: node.ProtocolVersion,
		AgentVersion:    AgentVersion(version, runtime.GOOS, runtime.GOARCH, host),
		ListenAddrs:     addrs,
		EventBuffer:     buffer,
		Features: types.Features{
			MDNS:         node.EnableMDNS,
			RelayClient:  node.EnableRelayClient,
			HolePunching: node.EnableHolePunching,
			AutoNAT:      node.EnableAutoNAT,
		},
	}
}
