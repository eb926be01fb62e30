package keyring

import "errors"

// ============================================================================
//                              错误定义
// ============================================================================

var (
	// ErrStoreUnavailable 凭据存储不可用（平台不支持或后端构建失败）
	ErrStoreUnavailable = errors.New("keyring: credential store unavailable")

	// ErrBackend 后端操作失败
	ErrBackend = errors.New("keyring: backend failure")

	// ErrNotFound 条目不存在（后端层）
	ErrNotFound = errors.New("keyring: entry not found")

	// ErrInvalidArgument 键为空或值超出上限
	ErrInvalidArgument = errors.New("keyring: invalid argument")

	// ErrUnsupportedPlatform 当前平台没有可用后端
	ErrUnsupportedPlatform = errors.New("keyring: unsupported platform")

	// ErrSecretServiceMissing 会话总线上没有 Secret Service
	ErrSecretServiceMissing = errors.New("keyring: secret service not available on session bus")
)
