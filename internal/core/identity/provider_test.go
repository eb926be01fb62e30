package identity

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhan593/SwarmDrop/internal/core/keyring"
)

func newTestProvider(t *testing.T) (*Provider, *keyring.Gateway) {
	t.Helper()
	g := keyring.NewGateway(keyring.NewBootstrap(keyring.StaticFactory(keyring.NewMemoryBackend())), 0, nil)
	return NewProvider(g), g
}

func TestProvider_CurrentBeforeLoad(t *testing.T) {
	p, _ := newTestProvider(t)

	_, err := p.Current()
	assert.ErrorIs(t, err, ErrIdentityNotRegistered)

	_, err = p.Load()
	assert.ErrorIs(t, err, ErrIdentityNotRegistered)
}

func TestProvider_LoadOrCreate_Stable(t *testing.T) {
	p, g := newTestProvider(t)

	first, err := p.LoadOrCreate()
	require.NoError(t, err)

	stored, found, err := g.Get(StoreKey)
	require.NoError(t, err)
	require.True(t, found)
	_, err = base64.StdEncoding.DecodeString(stored)
	require.NoError(t, err)

	// 新的 Provider 读取同一份存储，得到同一个身份
	p2 := NewProvider(g)
	second, err := p2.LoadOrCreate()
	require.NoError(t, err)
	assert.Equal(t, first.PeerID(), second.PeerID())

	cur, err := p2.Current()
	require.NoError(t, err)
	assert.Same(t, second, cur)
}

func TestProvider_Register(t *testing.T) {
	p, g := newTestProvider(t)

	id, err := Generate()
	require.NoError(t, err)
	data, err := id.Bytes()
	require.NoError(t, err)

	peerID, err := p.Register(data)
	require.NoError(t, err)
	assert.Equal(t, id.PeerID(), peerID)

	loaded, err := NewProvider(g).Load()
	require.NoError(t, err)
	assert.Equal(t, peerID, loaded.PeerID())

	_, err = p.Register([]byte("garbage"))
	assert.ErrorIs(t, err, ErrInvalidKeyData)
}

func TestProvider_Generate(t *testing.T) {
	p, _ := newTestProvider(t)

	data, peerID, err := p.Generate()
	require.NoError(t, err)

	restored, err := FromBytes(data)
	require.NoError(t, err)
	assert.Equal(t, peerID, restored.PeerID())

	cur, err := p.Current()
	require.NoError(t, err)
	assert.Equal(t, peerID, cur.PeerID())
}

// brokenStore 总是失败的凭据存储
type brokenStore struct{}

func (brokenStore) Get(string) (string, bool, error) { return "", false, errors.New("backend down") }
func (brokenStore) Set(string, string) error         { return errors.New("backend down") }

func TestProvider_StoreFailure(t *testing.T) {
	p := NewProvider(brokenStore{})

	_, err := p.LoadOrCreate()
	assert.Error(t, err)

	_, err = p.Current()
	assert.ErrorIs(t, err, ErrIdentityNotRegistered)
}

func TestProvider_CorruptStoredValue(t *testing.T) {
	p, g := newTestProvider(t)
	require.NoError(t, g.Set(StoreKey, "%%%not-base64"))

	_, err := p.LoadOrCreate()
	assert.ErrorIs(t, err, ErrInvalidKeyData)
}
