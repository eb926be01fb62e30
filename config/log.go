package config

import (
	"fmt"
	"strings"
)

// LogConfig 日志配置
//
// 子系统级别仍由 SWARMDROP_LOG_LEVEL 控制；DefaultLevel 只覆盖默认级别。
type LogConfig struct {
	// DefaultLevel 默认日志级别：debug/info/warn/error，空表示沿用环境变量
	DefaultLevel string `json:"default_level,omitempty" koanf:"default_level"`

	// File 日志文件路径，空表示输出到 stderr
	File string `json:"file,omitempty" koanf:"file"`

	// FxEvents 输出依赖注入框架的事件日志
	FxEvents bool `json:"fx_events" koanf:"fx_events"`
}

// DefaultLogConfig 返回默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{}
}

// Validate 验证日志配置
func (c LogConfig) Validate() error {
	switch strings.ToLower(c.DefaultLevel) {
	case "", "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("unknown level %q", c.DefaultLevel)
	}
}
