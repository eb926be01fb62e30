package identity

import (
	"crypto/rand"
	"fmt"

	"github.com/libp2p/go-libp2p/core/crypto"
	"github.com/libp2p/go-libp2p/core/peer"

	"github.com/hhan593/SwarmDrop/pkg/interfaces"
	"github.com/hhan593/SwarmDrop/pkg/types"
)

// ============================================================================
//                              Identity 实现
// ============================================================================

// Identity 节点身份
//
// 创建后不再修改，可在多个 goroutine 间共享。
type Identity struct {
	priv crypto.PrivKey
	id   peer.ID
}

// 确保实现接口
var _ interfaces.Identity = (*Identity)(nil)

// Generate 生成新的 Ed25519 身份
func Generate() (*Identity, error) {
	priv, _, err := crypto.GenerateEd25519Key(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("identity: generate key: %w", err)
	}
	return New(priv)
}

// New 从私钥创建身份
func New(priv crypto.PrivKey) (*Identity, error) {
	if priv == nil {
		return nil, ErrNilPrivateKey
	}
	if priv.Type() != crypto.Ed25519 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKeyType, priv.Type())
	}
	id, err := peer.IDFromPrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("identity: derive peer id: %w", err)
	}
	return &Identity{priv: priv, id: id}, nil
}

// FromBytes 从 protobuf 编码的私钥恢复身份
func FromBytes(data []byte) (*Identity, error) {
	if len(data) == 0 {
		return nil, ErrInvalidKeyData
	}
	priv, err := crypto.UnmarshalPrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyData, err)
	}
	return New(priv)
}

// PeerID 返回节点 ID
func (i *Identity) PeerID() types.PeerID {
	return types.PeerID(i.id.String())
}

// LibP2PID 返回 libp2p peer.ID
func (i *Identity) LibP2PID() peer.ID {
	return i.id
}

// PrivKey 返回私钥
func (i *Identity) PrivKey() crypto.PrivKey {
	return i.priv
}

// PublicKey 返回公钥
func (i *Identity) PublicKey() crypto.PubKey {
	return i.priv.GetPublic()
}

// Bytes 返回 protobuf 编码的私钥
func (i *Identity) Bytes() ([]byte, error) {
	return crypto.MarshalPrivateKey(i.priv)
}

// Sign 签名数据
func (i *Identity) Sign(data []byte) ([]byte, error) {
	return i.priv.Sign(data)
}

// Verify 用本身份的公钥验证签名
func (i *Identity) Verify(data, signature []byte) (bool, error) {
	return i.priv.GetPublic().Verify(data, signature)
}

// Equals 比较两个身份是否相同
func (i *Identity) Equals(other *Identity) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.priv.Equals(other.priv)
}
