package keyring

import "sync"

// MemoryBackend 进程内存后端
//
// 不落盘，仅用于测试与无凭据服务的临时运行。
type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string]map[string]string
}

// NewMemoryBackend 创建内存后端
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{entries: make(map[string]map[string]string)}
}

// Kind 返回后端类型名称
func (b *MemoryBackend) Kind() string {
	return string(KindMemory)
}

// Set 写入（覆盖）条目
func (b *MemoryBackend) Set(service, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	svc, ok := b.entries[service]
	if !ok {
		svc = make(map[string]string)
		b.entries[service] = svc
	}
	svc[key] = value
	return nil
}

// Get 读取条目
func (b *MemoryBackend) Get(service, key string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	value, ok := b.entries[service][key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Delete 删除条目
func (b *MemoryBackend) Delete(service, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.entries[service][key]; !ok {
		return ErrNotFound
	}
	delete(b.entries[service], key)
	return nil
}

// Len 返回条目总数
func (b *MemoryBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := 0
	for _, svc := range b.entries {
		n += len(svc)
	}
	return n
}
