package identity

import "errors"

// ============================================================================
// 错误定义
// ============================================================================

var (
	// ErrNilPrivateKey 私钥为 nil
	ErrNilPrivateKey = errors.New("identity: private key is nil")

	// ErrUnsupportedKeyType 只接受 Ed25519 密钥
	ErrUnsupportedKeyType = errors.New("identity: unsupported key type")

	// ErrInvalidKeyData 密钥数据无法解析
	ErrInvalidKeyData = errors.New("identity: invalid key data")

	// ErrIdentityNotRegistered 尚未注册身份
	ErrIdentityNotRegistered = errors.New("identity: not registered")
)
