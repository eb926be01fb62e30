package storage

import (
	"log/slog"

	"github.com/hhan593/SwarmDrop/internal/core/storage/engine"
	"github.com/hhan593/SwarmDrop/internal/core/storage/engine/badger"
	"github.com/hhan593/SwarmDrop/internal/core/storage/kv"
)

// PrefixCredentials keystore 凭据键前缀
var PrefixCredentials = []byte("c/")

// Open 以默认配置打开指定路径的存储引擎
//
// l 为 nil 时 BadgerDB 自身日志被丢弃。
func Open(path string, l *slog.Logger) (engine.InternalEngine, error) {
	cfg := engine.DefaultConfig(path).WithLogger(l)
	return badger.New(cfg)
}

// NewKVStore 创建带前缀的 KVStore
func NewKVStore(eng engine.InternalEngine, prefix []byte) *kv.Store {
	return kv.New(eng, prefix)
}
