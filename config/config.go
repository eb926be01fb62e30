// Package config 提供统一的配置管理
//
// 本包采用混合配置模式：
//   - 主 Config 结构体嵌入所有子配置
//   - 每个子配置在独立文件中定义，带默认值与校验
//   - 加载顺序：默认值 → YAML 配置文件 → 环境变量（SWARMDROP_ 前缀）
//
// 使用示例：
//
//	// 创建默认配置
//	cfg := config.NewConfig()
//	cfg.Node.EnableMDNS = false
//
//	// 从文件与环境变量加载
//	cfg, err := config.Load("swarmdrop.yaml")
package config

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Config 是 SwarmDrop 的完整配置结构
//
//   - Node: 引擎与会话配置（协议版本、监听地址、功能开关）
//   - Keyring: 凭据存储配置
//   - Storage: 数据目录
//   - Bridge: 事件桥接配置
//   - Log: 日志配置
//   - Metrics: 指标配置
type Config struct {
	// Node 引擎与会话配置
	Node NodeConfig `json:"node" koanf:"node"`

	// Keyring 凭据存储配置
	Keyring KeyringConfig `json:"keyring" koanf:"keyring"`

	// Storage 存储配置
	Storage StorageConfig `json:"storage" koanf:"storage"`

	// Bridge 事件桥接配置
	Bridge BridgeConfig `json:"bridge" koanf:"bridge"`

	// Log 日志配置
	Log LogConfig `json:"log" koanf:"log"`

	// Metrics 指标配置
	Metrics MetricsConfig `json:"metrics" koanf:"metrics"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		Node:    DefaultNodeConfig(),
		Keyring: DefaultKeyringConfig(),
		Storage: DefaultStorageConfig(),
		Bridge:  DefaultBridgeConfig(),
		Log:     DefaultLogConfig(),
		Metrics: DefaultMetricsConfig(),
	}
}

// Validate 递归验证所有子配置
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Node.Validate(); err != nil {
		return fmt.Errorf("node: %w", err)
	}
	if err := c.Keyring.Validate(); err != nil {
		return fmt.Errorf("keyring: %w", err)
	}
	if err := c.Storage.Validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Bridge.Validate(); err != nil {
		return fmt.Errorf("bridge: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// Clone 返回配置的深拷贝
func (c *Config) Clone() *Config {
	out := *c
	out.Node.ListenAddrs = append([]string(nil), c.Node.ListenAddrs...)
	return &out
}

// ToJSON 序列化配置（敏感字段不输出）
func (c *Config) ToJSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// FromJSON 从 JSON 解析配置，未出现的字段保留默认值
func FromJSON(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
