package session

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hhan593/SwarmDrop/config"
)

func TestAgentVersion(t *testing.T) {
	assert.Equal(t, "swarmdrop/0.1.0 (linux; amd64; laptop)", AgentVersion("0.1.0", "linux", "amd64", "laptop"))
	assert.Equal(t, "swarmdrop/0.1.0 (darwin; arm64; unknown)", AgentVersion("0.1.0", "darwin", "arm64", ""))
}

func TestBuildSessionConfig(t *testing.T) {
	node := config.DefaultNodeConfig().WithMDNS(false)

	sc := BuildSessionConfig(node, "1.2.3", func() (string, error) { return "box", nil })

	assert.Equal(t, config.DefaultProtocolVersion, sc.ProtocolVersion)
	assert.Equal(t, AgentVersion("1.2.3", runtime.GOOS, runtime.GOARCH, "box"), sc.AgentVersion)
	assert.Equal(t, node.ListenAddrs, sc.ListenAddrs)
	assert.Equal(t, config.DefaultEventBuffer, sc.EventBuffer)
	assert.False(t, sc.Features.MDNS)
	assert.True(t, sc.Features.RelayClient)
	assert.True(t, sc.Features.HolePunching)
	assert.True(t, sc.Features.AutoNAT)
	assert.NoError(t, sc.Validate())

	// 监听地址是副本
	sc.ListenAddrs[0] = "/ip4/1.1.1.1/tcp/1"
	assert.NotEqual(t, sc.ListenAddrs[0], node.ListenAddrs[0])
}

func TestBuildSessionConfig_HostnameFailure(t *testing.T) {
	node := config.DefaultNodeConfig()
	node.EventBuffer = 0

	sc := BuildSessionConfig(node, "dev", func() (string, error) { return "", errors.New("no uts") })

	assert.Contains(t, sc.AgentVersion, "; unknown)")
	assert.Equal(t, config.DefaultEventBuffer, sc.EventBuffer)
}
