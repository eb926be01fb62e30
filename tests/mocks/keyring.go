package mocks

import (
	"sync"
)

// MockBackend 模拟 CredentialBackend 接口实现
//
// 默认行为是内存存储；条目不存在时返回 NotFoundErr。
type MockBackend struct {
	KindValue   string
	NotFoundErr error

	// 可覆盖的方法
	SetFunc    func(service, key, value string) error
	GetFunc    func(service, key string) (string, error)
	DeleteFunc func(service, key string) error

	mu      sync.Mutex
	entries map[string]string

	// 调用记录
	SetCalls    int
	GetCalls    int
	DeleteCalls int
}

// NewMockBackend 创建 MockBackend
func NewMockBackend(notFound error) *MockBackend {
	return &MockBackend{
		KindValue:   "mock",
		NotFoundErr: notFound,
		entries:     make(map[string]string),
	}
}

// Kind 返回后端类型名称
func (m *MockBackend) Kind() string {
	return m.KindValue
}

// Set 写入条目
func (m *MockBackend) Set(service, key, value string) error {
	m.mu.Lock()
	m.SetCalls++
	m.mu.Unlock()

	if m.SetFunc != nil {
		return m.SetFunc(service, key, value)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[service+"/"+key] = value
	return nil
}

// Get 读取条目
func (m *MockBackend) Get(service, key string) (string, error) {
	m.mu.Lock()
	m.GetCalls++
	m.mu.Unlock()

	if m.GetFunc != nil {
		return m.GetFunc(service, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[service+"/"+key]
	if !ok {
		return "", m.NotFoundErr
	}
	return v, nil
}

// Delete 删除条目
func (m *MockBackend) Delete(service, key string) error {
	m.mu.Lock()
	m.DeleteCalls++
	m.mu.Unlock()

	if m.DeleteFunc != nil {
		return m.DeleteFunc(service, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[service+"/"+key]; !ok {
		return m.NotFoundErr
	}
	delete(m.entries, service+"/"+key)
	return nil
}
