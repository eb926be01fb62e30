package config

import (
	"errors"
	"time"
)

// BridgeConfig 事件桥接配置
type BridgeConfig struct {
	// SendTimeout 单个事件投递到接收端的超时
	// 超时视为投递失败，记录日志后继续下一个事件
	SendTimeout time.Duration `json:"send_timeout" koanf:"send_timeout"`

	// DrainTimeout Shutdown 等待旧会话桥接排空的上限
	DrainTimeout time.Duration `json:"drain_timeout" koanf:"drain_timeout"`
}

// DefaultBridgeConfig 返回默认桥接配置
func DefaultBridgeConfig() BridgeConfig {
	return BridgeConfig{
		SendTimeout:  5 * time.Second,
		DrainTimeout: 5 * time.Second,
	}
}

// Validate 验证桥接配置
func (c BridgeConfig) Validate() error {
	if c.SendTimeout <= 0 {
		return errors.New("send_timeout must be positive")
	}
	if c.DrainTimeout < 0 {
		return errors.New("drain_timeout cannot be negative")
	}
	return nil
}
