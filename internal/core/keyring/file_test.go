package keyring

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhan593/SwarmDrop/pkg/interfaces"
)

func openKeystore(t *testing.T, path, passphrase string) *KeystoreBackend {
	t.Helper()
	b, err := NewKeystoreBackend(KeystoreOptions{Path: path, Passphrase: passphrase})
	require.NoError(t, err)
	return b
}

func TestKeystore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keystore.db")
	b := openKeystore(t, path, "")
	defer b.Close()

	_, err := b.Get(Service, "k")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, b.Delete(Service, "k"), ErrNotFound)

	require.NoError(t, b.Set(Service, "k", "secret-value"))
	got, err := b.Get(Service, "k")
	require.NoError(t, err)
	assert.Equal(t, "secret-value", got)

	// 其他命名空间不可见
	_, err = b.Get("other", "k")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, b.Delete(Service, "k"))
	_, err = b.Get(Service, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKeystore_ValuesAreEncrypted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keystore.db")
	b := openKeystore(t, path, "")
	defer b.Close()

	require.NoError(t, b.Set(Service, "k", "plain-secret"))

	raw, err := b.store.Get(entryKey(Service, "k"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "plain-secret")
}

func TestKeystore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keystore.db")

	b := openKeystore(t, path, "")
	require.NoError(t, b.Set(Service, "k", "v1"))
	require.NoError(t, b.Close())
	// 重复关闭是安全的
	require.NoError(t, b.Close())

	info, err := os.Stat(path + ".key")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	b2 := openKeystore(t, path, "")
	defer b2.Close()
	got, err := b2.Get(Service, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)
}

func TestKeystore_Passphrase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keystore.db")

	b := openKeystore(t, path, "correct horse")
	require.NoError(t, b.Set(Service, "k", "v"))
	require.NoError(t, b.Close())

	_, err := NewKeystoreBackend(KeystoreOptions{Path: path, Passphrase: "wrong"})
	assert.Error(t, err)

	b2 := openKeystore(t, path, "correct horse")
	defer b2.Close()
	got, err := b2.Get(Service, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestKeystore_EmptyPath(t *testing.T) {
	_, err := NewKeystoreBackend(KeystoreOptions{})
	assert.Error(t, err)
}

func TestKeystore_ThroughGateway(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keystore.db")
	b := NewBootstrap(func() (interfaces.CredentialBackend, error) {
		return NewKeystoreBackend(KeystoreOptions{Path: path})
	})
	defer b.Close()

	g := NewGateway(b, 0, nil)
	require.NoError(t, g.Set("identity.keypair", "abc"))

	got, found, err := g.Get("identity.keypair")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "abc", got)

	kind, err := g.Kind()
	require.NoError(t, err)
	assert.Equal(t, "keystore", kind)
}
