package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix 环境变量前缀
const EnvPrefix = "SWARMDROP_"

// Load 加载配置
//
// 优先级：环境变量 > 配置文件 > 默认值。path 为空时跳过文件。
//
// 环境变量格式：SWARMDROP_<SECTION>_<KEY>，第一个下划线分隔段名，
// 其余保留为字段名。例如：
//
//	SWARMDROP_NODE_EVENT_BUFFER=512        -> node.event_buffer
//	SWARMDROP_KEYRING_KEYSTORE_PASSPHRASE  -> keyring.keystore_passphrase
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := NewConfig()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey 把环境变量名转换为配置键
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, key, ok := strings.Cut(s, "_")
	if !ok {
		return section
	}
	return section + "." + key
}
