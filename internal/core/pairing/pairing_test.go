package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hhan593/SwarmDrop/tests/mocks"
)

func TestManager_Lifecycle(t *testing.T) {
	client := mocks.NewMockClient("12D3KooWLocal", 0)
	m := New(client, "12D3KooWLocal")

	assert.Equal(t, "12D3KooWLocal", m.LocalPeer().String())
	assert.Same(t, client, m.Client())
	assert.False(t, m.Closed())
	assert.NoError(t, m.EnsureOpen())

	assert.NoError(t, m.Close())
	assert.NoError(t, m.Close())
	assert.True(t, m.Closed())
	assert.ErrorIs(t, m.EnsureOpen(), ErrClosed)

	// 关闭配对管理器不会关闭共享的客户端
	assert.False(t, client.Stopped())
}
