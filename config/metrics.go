package config

// MetricsConfig 指标配置
type MetricsConfig struct {
	// Enabled 是否注册 Prometheus 指标
	Enabled bool `json:"enabled" koanf:"enabled"`

	// ListenAddr CLI 宿主暴露 /metrics 与 /events 的地址
	ListenAddr string `json:"listen_addr" koanf:"listen_addr"`
}

// DefaultMetricsConfig 返回默认指标配置
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:    true,
		ListenAddr: "127.0.0.1:7480",
	}
}
