package keyring

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhan593/SwarmDrop/internal/core/metrics"
	"github.com/hhan593/SwarmDrop/pkg/interfaces"
)

// failingBackend 所有操作都失败的后端
type failingBackend struct {
	err error
}

func (f *failingBackend) Kind() string                      { return "failing" }
func (f *failingBackend) Set(string, string, string) error  { return f.err }
func (f *failingBackend) Get(string, string) (string, error) { return "", f.err }
func (f *failingBackend) Delete(string, string) error       { return f.err }

func newTestGateway(t *testing.T) (*Gateway, *MemoryBackend) {
	t.Helper()
	backend := NewMemoryBackend()
	return NewGateway(NewBootstrap(StaticFactory(backend)), 0, metrics.New()), backend
}

func TestGateway_GetAbsent(t *testing.T) {
	g, _ := newTestGateway(t)

	value, found, err := g.Get("missing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestGateway_SetOverwrite(t *testing.T) {
	g, backend := newTestGateway(t)

	require.NoError(t, g.Set("token", "first"))
	require.NoError(t, g.Set("token", "second"))

	value, found, err := g.Get("token")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", value)
	assert.Equal(t, 1, backend.Len())

	// 条目位于固定命名空间下
	raw, err := backend.Get(Service, "token")
	require.NoError(t, err)
	assert.Equal(t, "second", raw)
}

func TestGateway_DeleteThenGet(t *testing.T) {
	g, _ := newTestGateway(t)

	require.NoError(t, g.Set("token", "v"))
	require.NoError(t, g.Delete("token"))

	_, found, err := g.Get("token")
	require.NoError(t, err)
	assert.False(t, found)

	// 删除不存在的条目视为成功
	assert.NoError(t, g.Delete("token"))
}

func TestGateway_InvalidArguments(t *testing.T) {
	g, _ := newTestGateway(t)

	assert.ErrorIs(t, g.Set("", "v"), ErrInvalidArgument)
	assert.ErrorIs(t, g.Delete(""), ErrInvalidArgument)
	_, _, err := g.Get("")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.NoError(t, g.Set("k", strings.Repeat("x", g.MaxValueSize())))
	assert.ErrorIs(t, g.Set("k", strings.Repeat("x", g.MaxValueSize()+1)), ErrInvalidArgument)
}

func TestGateway_BackendFailure(t *testing.T) {
	cause := errors.New("dbus: connection reset")
	g := NewGateway(NewBootstrap(StaticFactory(&failingBackend{err: cause})), 0, nil)

	err := g.Set("k", "v")
	assert.ErrorIs(t, err, ErrBackend)
	assert.ErrorIs(t, err, cause)

	_, found, err := g.Get("k")
	assert.ErrorIs(t, err, ErrBackend)
	assert.False(t, found)

	assert.ErrorIs(t, g.Delete("k"), ErrBackend)
}

func TestGateway_StoreUnavailable(t *testing.T) {
	g := NewGateway(NewBootstrap(func() (interfaces.CredentialBackend, error) {
		return nil, errors.New("boom")
	}), 0, nil)

	assert.ErrorIs(t, g.Set("k", "v"), ErrStoreUnavailable)
	_, _, err := g.Get("k")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, g.Delete("k"), ErrStoreUnavailable)

	_, err = g.Kind()
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestGateway_Kind(t *testing.T) {
	g, _ := newTestGateway(t)

	kind, err := g.Kind()
	require.NoError(t, err)
	assert.Equal(t, "memory", kind)
}
