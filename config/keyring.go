package config

import (
	"errors"
	"path/filepath"
)

// DefaultMaxValueSize 单个凭据值的默认上限（字节）
const DefaultMaxValueSize = 4096

// KeyringConfig 凭据存储配置
//
// 后端类型由平台决定，不可配置；这里只配置与平台无关的限制，
// 以及 keystore 后端（Android 等无原生凭据服务的平台）的落盘位置。
type KeyringConfig struct {
	// MaxValueSize 单个凭据值的上限（字节）
	MaxValueSize int `json:"max_value_size" koanf:"max_value_size"`

	// KeystorePath keystore 后端数据库路径
	// 为空时使用 ${storage.data_dir}/keystore.db
	KeystorePath string `json:"keystore_path,omitempty" koanf:"keystore_path"`

	// KeystorePassphrase keystore 后端加密口令
	// 为空时在数据目录生成设备密钥文件。只从环境变量读取，不序列化。
	KeystorePassphrase string `json:"-" koanf:"keystore_passphrase"`
}

// DefaultKeyringConfig 返回默认凭据存储配置
func DefaultKeyringConfig() KeyringConfig {
	return KeyringConfig{
		MaxValueSize: DefaultMaxValueSize,
	}
}

// Validate 验证凭据存储配置
func (c KeyringConfig) Validate() error {
	if c.MaxValueSize <= 0 {
		return errors.New("max_value_size must be positive")
	}
	return nil
}

// ResolveKeystorePath 返回 keystore 数据库路径
func (c KeyringConfig) ResolveKeystorePath(storage StorageConfig) string {
	if c.KeystorePath != "" {
		return c.KeystorePath
	}
	return filepath.Join(storage.DataDir, "keystore.db")
}
