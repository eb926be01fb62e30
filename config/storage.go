package config

import (
	"fmt"
	"path/filepath"
)

// StorageConfig 存储配置
//
// 数据目录结构：
//
//	${DataDir}/
//	├── keystore.db/        # keystore 凭据后端（BadgerDB，仅部分平台使用）
//	├── keystore.key        # keystore 设备密钥（age X25519，0600）
//	└── logs/               # 日志目录（可选）
type StorageConfig struct {
	// DataDir 数据目录路径
	// 默认值: "./data"
	DataDir string `json:"data_dir" koanf:"data_dir"`
}

// DefaultStorageConfig 返回默认的存储配置
func DefaultStorageConfig() StorageConfig {
	return StorageConfig{
		DataDir: "./data",
	}
}

// Validate 验证存储配置的有效性
func (c StorageConfig) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir cannot be empty")
	}
	return nil
}

// LogPath 返回日志目录路径
func (c StorageConfig) LogPath() string {
	return filepath.Join(c.DataDir, "logs")
}
