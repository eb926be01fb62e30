package keyring

import (
	"fmt"
	"io"
	"sync"

	"github.com/hhan593/SwarmDrop/internal/util/logger"
	"github.com/hhan593/SwarmDrop/pkg/interfaces"
)

var log = logger.Logger("core/keyring")

// Factory 构建凭据后端
type Factory func() (interfaces.CredentialBackend, error)

// Bootstrap 凭据存储的一次性安装器
//
// 应用上下文持有唯一的 Bootstrap。后端在第一次 EnsureInitialized
// 调用时构建；并发调用方阻塞直到安装完成，并观察到同一个结果。
type Bootstrap struct {
	factory Factory

	once    sync.Once
	backend interfaces.CredentialBackend
	err     error
}

// NewBootstrap 创建 Bootstrap
func NewBootstrap(factory Factory) *Bootstrap {
	return &Bootstrap{factory: factory}
}

// EnsureInitialized 确保后端已安装并返回它
//
// 构建失败时返回包装了原因的 ErrStoreUnavailable，且之后每次调用都返回
// 同一个错误，不会重试。
func (b *Bootstrap) EnsureInitialized() (interfaces.CredentialBackend, error) {
	b.once.Do(func() {
		if b.factory == nil {
			b.err = fmt.Errorf("%w: no backend factory", ErrStoreUnavailable)
			return
		}
		backend, err := b.factory()
		if err != nil {
			b.err = fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
			log.Error("凭据存储初始化失败", "error", err)
			return
		}
		b.backend = backend
		log.Info("凭据存储已初始化", "kind", backend.Kind())
	})
	return b.backend, b.err
}

// Close 释放后端持有的资源
//
// 只有持有本地文件的后端（keystore）需要关闭；未初始化时为空操作。
func (b *Bootstrap) Close() error {
	b.once.Do(func() {
		b.err = fmt.Errorf("%w: bootstrap closed", ErrStoreUnavailable)
	})
	if c, ok := b.backend.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
