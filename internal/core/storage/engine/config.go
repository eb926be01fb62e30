package engine

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Config 存储引擎配置
//
// keystore 只保存少量加密凭据，默认参数按小数据量裁剪，并默认同步写入。
// 测试代码应使用 t.TempDir() 创建临时目录。
type Config struct {
	// Path 数据目录路径（必需）
	Path string

	// SyncWrites 是否同步写入
	SyncWrites bool

	// ReadOnly 是否只读模式
	ReadOnly bool

	// Logger 日志记录器，为 nil 时禁用 badger 自身日志
	Logger *slog.Logger

	// MemTableSize 内存表大小（字节）
	MemTableSize int64

	// ValueLogFileSize 值日志文件大小（字节）
	ValueLogFileSize int64

	// BlockCacheSize 块缓存大小（字节）
	BlockCacheSize int64

	// GCInterval 值日志垃圾回收间隔，0 表示禁用
	GCInterval time.Duration

	// GCDiscardRatio 垃圾回收丢弃比例
	GCDiscardRatio float64
}

// DefaultConfig 返回默认配置
func DefaultConfig(path string) *Config {
	return &Config{
		Path:             path,
		SyncWrites:       true,
		MemTableSize:     8 << 20,  // 8MB
		ValueLogFileSize: 16 << 20, // 16MB
		BlockCacheSize:   8 << 20,  // 8MB
		GCInterval:       30 * time.Minute,
		GCDiscardRatio:   0.5,
	}
}

// Validate 验证配置
func (c *Config) Validate() error {
	if c.Path == "" {
		return ErrInvalidConfig
	}
	if c.MemTableSize < 1<<20 { // 最小 1MB
		return ErrInvalidConfig
	}
	if c.ValueLogFileSize < 1<<20 { // 最小 1MB
		return ErrInvalidConfig
	}
	return nil
}

// EnsureDir 确保数据目录存在
func (c *Config) EnsureDir() error {
	absPath, err := filepath.Abs(c.Path)
	if err != nil {
		return err
	}
	c.Path = absPath
	return os.MkdirAll(c.Path, 0o700)
}

// WithLogger 设置日志记录器
func (c *Config) WithLogger(l *slog.Logger) *Config {
	c.Logger = l
	return c
}

// WithReadOnly 设置只读模式
func (c *Config) WithReadOnly(readOnly bool) *Config {
	c.ReadOnly = readOnly
	return c
}
