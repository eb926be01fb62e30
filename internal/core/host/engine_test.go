package host

import (
	"context"
	"testing"
	"time"

	"github.com/libp2p/go-libp2p/core/peer"
	ma "github.com/multiformats/go-multiaddr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhan593/SwarmDrop/internal/core/identity"
	"github.com/hhan593/SwarmDrop/pkg/types"
	"github.com/hhan593/SwarmDrop/tests/mocks"
)

// testSessionConfig 仅监听回环 TCP，关闭所有需要外网的功能
func testSessionConfig() types.SessionConfig {
	return types.SessionConfig{
		ProtocolVersion: "/swarmdrop/1.0.0",
		AgentVersion:    "swarmdrop/test (linux; amd64; ci)",
		ListenAddrs:     []string{"/ip4/127.0.0.1/tcp/0"},
		EventBuffer:     64,
	}
}

func startTestEngine(t *testing.T) (*Client, <-chan types.NodeEvent, *identity.Identity) {
	t.Helper()

	id, err := identity.Generate()
	require.NoError(t, err)

	c, events, err := NewEngine().Construct(context.Background(), id, testSessionConfig())
	require.NoError(t, err)

	client := c.(*Client)
	t.Cleanup(func() { _ = client.Shutdown() })
	return client, events, id
}

// waitEvent 读取事件直到满足条件
func waitEvent(t *testing.T, events <-chan types.NodeEvent, match func(types.NodeEvent) bool) types.NodeEvent {
	t.Helper()

	timeout := time.After(10 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatal("event channel closed")
			}
			if match(ev) {
				return ev
			}
		case <-timeout:
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestEngine_ConstructEmitsListening(t *testing.T) {
	client, events, id := startTestEngine(t)

	assert.Equal(t, id.PeerID(), client.LocalPeer())

	ev := waitEvent(t, events, func(ev types.NodeEvent) bool {
		return ev.Type == types.EventListening
	})
	assert.Contains(t, ev.Addr, "/ip4/127.0.0.1/tcp/")
	assert.NotEmpty(t, client.Addrs())
}

func TestEngine_ConnectIdentifyDisconnect(t *testing.T) {
	a, eventsA, _ := startTestEngine(t)
	b, _, idB := startTestEngine(t)

	addr, err := ma.NewMultiaddr(b.Addrs()[0])
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, a.Host().Connect(ctx, peer.AddrInfo{
		ID:    b.Host().ID(),
		Addrs: []ma.Multiaddr{addr},
	}))

	connected := waitEvent(t, eventsA, func(ev types.NodeEvent) bool {
		return ev.Type == types.EventPeerConnected
	})
	assert.Equal(t, idB.PeerID(), connected.PeerID)

	identified := waitEvent(t, eventsA, func(ev types.NodeEvent) bool {
		return ev.Type == types.EventIdentifyReceived
	})
	assert.Equal(t, idB.PeerID(), identified.PeerID)
	assert.Equal(t, "swarmdrop/test (linux; amd64; ci)", identified.AgentVersion)
	assert.Equal(t, "/swarmdrop/1.0.0", identified.ProtocolVersion)

	require.NoError(t, b.Shutdown())

	disconnected := waitEvent(t, eventsA, func(ev types.NodeEvent) bool {
		return ev.Type == types.EventPeerDisconnected
	})
	assert.Equal(t, idB.PeerID(), disconnected.PeerID)
}

func TestEngine_ShutdownClosesChannelOnce(t *testing.T) {
	client, events, _ := startTestEngine(t)

	require.NoError(t, client.Shutdown())
	require.NoError(t, client.Shutdown())

	select {
	case <-client.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("Done not closed")
	}

	// 排空剩余事件后通道关闭
	for range events {
	}
}

func TestEngine_ConstructErrors(t *testing.T) {
	e := NewEngine()

	_, _, err := e.Construct(context.Background(), nil, testSessionConfig())
	assert.ErrorIs(t, err, ErrNilIdentity)

	bad := testSessionConfig()
	bad.EventBuffer = 0
	id, err := identity.Generate()
	require.NoError(t, err)
	_, _, err = e.Construct(context.Background(), id, bad)
	assert.Error(t, err)

	_, _, err = e.Construct(context.Background(), mocks.NewMockIdentity("x"), testSessionConfig())
	assert.Error(t, err, "undecodable identity must fail")

	badAddr := testSessionConfig()
	badAddr.ListenAddrs = []string{"/ip4/127.0.0.1/tcp/notaport"}
	_, _, err = e.Construct(context.Background(), id, badAddr)
	assert.Error(t, err)
}
