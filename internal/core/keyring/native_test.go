package keyring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gokeyring "github.com/zalando/go-keyring"
)

func TestNativeBackend_WithMockProvider(t *testing.T) {
	gokeyring.MockInit()

	b := &NativeBackend{kind: KindKeychain}
	assert.Equal(t, "keychain", b.Kind())

	_, err := b.Get(Service, "k")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, b.Delete(Service, "k"), ErrNotFound)

	require.NoError(t, b.Set(Service, "k", "v"))
	got, err := b.Get(Service, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	require.NoError(t, b.Delete(Service, "k"))
	_, err = b.Get(Service, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewNativeBackend_RejectsNonNativeKind(t *testing.T) {
	_, err := NewNativeBackend(KindKeystore)
	assert.Error(t, err)
}
