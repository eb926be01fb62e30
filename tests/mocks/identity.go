package mocks

import (
	"github.com/hhan593/SwarmDrop/pkg/types"
)

// MockIdentity 模拟 Identity 接口实现
type MockIdentity struct {
	PeerIDValue types.PeerID
	BytesValue  []byte

	// 可覆盖的方法
	BytesFunc func() ([]byte, error)
}

// NewMockIdentity 创建 MockIdentity
func NewMockIdentity(peerID types.PeerID) *MockIdentity {
	return &MockIdentity{
		PeerIDValue: peerID,
		BytesValue:  []byte("mock-keypair-" + string(peerID)),
	}
}

// PeerID 返回节点 ID
func (m *MockIdentity) PeerID() types.PeerID {
	return m.PeerIDValue
}

// Bytes 返回序列化的密钥
func (m *MockIdentity) Bytes() ([]byte, error) {
	if m.BytesFunc != nil {
		return m.BytesFunc()
	}
	return m.BytesValue, nil
}
