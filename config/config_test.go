package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Valid(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultProtocolVersion, cfg.Node.ProtocolVersion)
	assert.Equal(t, DefaultEventBuffer, cfg.Node.EventBuffer)
	assert.Equal(t, DefaultMaxValueSize, cfg.Keyring.MaxValueSize)
	assert.True(t, cfg.Node.EnableMDNS)
}

func TestNodeConfig_Validate(t *testing.T) {
	cfg := DefaultNodeConfig()

	bad := cfg
	bad.ProtocolVersion = "swarmdrop"
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.EventBuffer = 0
	assert.Error(t, bad.Validate())

	bad = cfg.WithListenAddrs("not-a-multiaddr")
	assert.Error(t, bad.Validate())
}

func TestKeyringConfig_ResolveKeystorePath(t *testing.T) {
	storage := StorageConfig{DataDir: "/var/lib/swarmdrop"}

	cfg := DefaultKeyringConfig()
	assert.Equal(t, filepath.Join("/var/lib/swarmdrop", "keystore.db"), cfg.ResolveKeystorePath(storage))

	cfg.KeystorePath = "/tmp/ks.db"
	assert.Equal(t, "/tmp/ks.db", cfg.ResolveKeystorePath(storage))
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swarmdrop.yaml")
	yaml := `
node:
  event_buffer: 64
  enable_mdns: false
bridge:
  send_timeout: 2s
storage:
  data_dir: /data/file
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("SWARMDROP_STORAGE_DATA_DIR", "/data/env")
	t.Setenv("SWARMDROP_KEYRING_KEYSTORE_PASSPHRASE", "hunter2")
	t.Setenv("SWARMDROP_LOG_LEVEL", "session=debug,info")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.Node.EventBuffer)
	assert.False(t, cfg.Node.EnableMDNS)
	assert.Equal(t, 2*time.Second, cfg.Bridge.SendTimeout)
	assert.Equal(t, "/data/env", cfg.Storage.DataDir)
	assert.Equal(t, "hunter2", cfg.Keyring.KeystorePassphrase)
	// 未出现的字段保留默认值
	assert.Equal(t, DefaultProtocolVersion, cfg.Node.ProtocolVersion)
	assert.True(t, cfg.Node.EnableRelayClient)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "node.event_buffer", envKey("SWARMDROP_NODE_EVENT_BUFFER"))
	assert.Equal(t, "keyring.max_value_size", envKey("SWARMDROP_KEYRING_MAX_VALUE_SIZE"))
	assert.Equal(t, "storage", envKey("SWARMDROP_STORAGE"))
}

func TestToJSON_OmitsPassphrase(t *testing.T) {
	cfg := NewConfig()
	cfg.Keyring.KeystorePassphrase = "hunter2"

	data, err := cfg.ToJSON()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hunter2")

	parsed, err := FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, cfg.Node, parsed.Node)
	assert.Empty(t, parsed.Keyring.KeystorePassphrase)
}
