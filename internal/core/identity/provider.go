package identity

import (
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/hhan593/SwarmDrop/internal/util/logger"
	"github.com/hhan593/SwarmDrop/pkg/types"
)

var log = logger.Logger("core/identity")

// StoreKey 身份在凭据存储中的键
const StoreKey = "identity.keypair"

// CredentialStore 身份持久化所需的凭据能力
type CredentialStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Provider 身份提供者
//
// 缓存当前身份，并经凭据存储持久化（base64 编码的 protobuf 私钥）。
type Provider struct {
	store CredentialStore

	mu      sync.RWMutex
	current *Identity
}

// NewProvider 创建身份提供者
func NewProvider(store CredentialStore) *Provider {
	return &Provider{store: store}
}

// Current 返回当前身份
//
// 未加载或注册时返回 ErrIdentityNotRegistered。
func (p *Provider) Current() (*Identity, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.current == nil {
		return nil, ErrIdentityNotRegistered
	}
	return p.current, nil
}

// Load 从凭据存储加载身份
//
// 存储中没有身份时返回 ErrIdentityNotRegistered。
func (p *Provider) Load() (*Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id, err := p.loadLocked()
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, ErrIdentityNotRegistered
	}
	p.current = id
	return id, nil
}

// LoadOrCreate 加载身份，不存在时生成并保存
func (p *Provider) LoadOrCreate() (*Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil {
		return p.current, nil
	}

	id, err := p.loadLocked()
	if err != nil {
		return nil, err
	}
	if id == nil {
		id, err = Generate()
		if err != nil {
			return nil, err
		}
		if err := p.saveLocked(id); err != nil {
			return nil, err
		}
		log.Info("已生成新身份", "peerID", id.PeerID().ShortString())
	}

	p.current = id
	return id, nil
}

// Register 安装外部提供的密钥对并返回设备 ID
func (p *Provider) Register(keypair []byte) (types.PeerID, error) {
	id, err := FromBytes(keypair)
	if err != nil {
		return types.EmptyPeerID, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.saveLocked(id); err != nil {
		return types.EmptyPeerID, err
	}
	p.current = id
	log.Info("已注册身份", "peerID", id.PeerID().ShortString())
	return id.PeerID(), nil
}

// Generate 生成新身份并保存，替换当前身份
//
// 返回 protobuf 编码的私钥，供宿主备份。
func (p *Provider) Generate() ([]byte, types.PeerID, error) {
	id, err := Generate()
	if err != nil {
		return nil, types.EmptyPeerID, err
	}
	data, err := id.Bytes()
	if err != nil {
		return nil, types.EmptyPeerID, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.saveLocked(id); err != nil {
		return nil, types.EmptyPeerID, err
	}
	p.current = id
	return data, id.PeerID(), nil
}

func (p *Provider) loadLocked() (*Identity, error) {
	encoded, found, err := p.store.Get(StoreKey)
	if err != nil {
		return nil, fmt.Errorf("identity: load: %w", err)
	}
	if !found {
		return nil, nil
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyData, err)
	}
	return FromBytes(data)
}

func (p *Provider) saveLocked(id *Identity) error {
	data, err := id.Bytes()
	if err != nil {
		return fmt.Errorf("identity: marshal: %w", err)
	}
	if err := p.store.Set(StoreKey, base64.StdEncoding.EncodeToString(data)); err != nil {
		return fmt.Errorf("identity: save: %w", err)
	}
	return nil
}
