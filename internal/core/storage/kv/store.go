package kv

import (
	"github.com/hhan593/SwarmDrop/internal/core/storage/engine"
)

// Store 带前缀隔离的 KV 存储
//
// Store 封装底层存储引擎，为所有键自动添加前缀。
// 线程安全由底层引擎保证。
type Store struct {
	engine engine.InternalEngine
	prefix []byte
}

// New 创建新的 KVStore
//
// 参数:
//   - eng: 底层存储引擎
//   - prefix: 键前缀（所有操作会自动添加此前缀）
func New(eng engine.InternalEngine, prefix []byte) *Store {
	p := make([]byte, len(prefix))
	copy(p, prefix)
	return &Store{
		engine: eng,
		prefix: p,
	}
}

// Prefix 返回前缀副本
func (s *Store) Prefix() []byte {
	p := make([]byte, len(s.prefix))
	copy(p, s.prefix)
	return p
}

// prefixKey 为键添加前缀
func (s *Store) prefixKey(key []byte) []byte {
	if len(s.prefix) == 0 {
		return key
	}
	prefixed := make([]byte, len(s.prefix)+len(key))
	copy(prefixed, s.prefix)
	copy(prefixed[len(s.prefix):], key)
	return prefixed
}

// Get 获取值
func (s *Store) Get(key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, engine.ErrEmptyKey
	}
	return s.engine.Get(s.prefixKey(key))
}

// Put 设置值
func (s *Store) Put(key, value []byte) error {
	if len(key) == 0 {
		return engine.ErrEmptyKey
	}
	return s.engine.Put(s.prefixKey(key), value)
}

// Delete 删除键
func (s *Store) Delete(key []byte) error {
	if len(key) == 0 {
		return engine.ErrEmptyKey
	}
	return s.engine.Delete(s.prefixKey(key))
}

// Has 检查键是否存在
func (s *Store) Has(key []byte) (bool, error) {
	if len(key) == 0 {
		return false, engine.ErrEmptyKey
	}
	return s.engine.Has(s.prefixKey(key))
}

// GetString 获取字符串值
func (s *Store) GetString(key []byte) (string, error) {
	data, err := s.Get(key)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// PutString 设置字符串值
func (s *Store) PutString(key []byte, value string) error {
	return s.Put(key, []byte(value))
}

// Sync 同步底层引擎
func (s *Store) Sync() error {
	return s.engine.Sync()
}
