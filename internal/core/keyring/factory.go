package keyring

import (
	"fmt"

	"github.com/hhan593/SwarmDrop/pkg/interfaces"
)

// PlatformFactory 返回按 GOOS 构建后端的 Factory
//
// keystore 选项只在 KindKeystore 时使用。
func PlatformFactory(goos string, opts KeystoreOptions) Factory {
	return func() (interfaces.CredentialBackend, error) {
		kind, err := SelectKind(goos)
		if err != nil {
			return nil, err
		}
		return NewBackend(kind, opts)
	}
}

// NewBackend 构建指定类型的后端
func NewBackend(kind Kind, opts KeystoreOptions) (interfaces.CredentialBackend, error) {
	switch kind {
	case KindKeychain, KindWinCred, KindSecretService:
		return NewNativeBackend(kind)
	case KindKeystore:
		return NewKeystoreBackend(opts)
	case KindMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("%w: backend kind %q", ErrUnsupportedPlatform, kind)
	}
}

// StaticFactory 返回总是给出同一后端的 Factory
func StaticFactory(backend interfaces.CredentialBackend) Factory {
	return func() (interfaces.CredentialBackend, error) {
		return backend, nil
	}
}
