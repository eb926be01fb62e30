package swarmdrop

import (
	"errors"

	"github.com/hhan593/SwarmDrop/internal/core/identity"
	"github.com/hhan593/SwarmDrop/internal/core/keyring"
	"github.com/hhan593/SwarmDrop/internal/core/session"
	"github.com/hhan593/SwarmDrop/internal/core/sink"
)

// 公共错误定义
//
// 均为内部包哨兵错误的别名，调用方使用 errors.Is 判断。
var (
	// ────────────────────────────────────────────────────────────────────────
	// 会话错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrEngineConstructionFailed 引擎构造失败，当前会话保持不变
	ErrEngineConstructionFailed = session.ErrEngineConstructionFailed

	// ErrNoActiveSession 没有活跃会话
	ErrNoActiveSession = session.ErrNoActiveSession

	// ────────────────────────────────────────────────────────────────────────
	// 凭据错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrStoreUnavailable 凭据存储初始化失败（粘滞）
	ErrStoreUnavailable = keyring.ErrStoreUnavailable

	// ErrBackend 凭据后端操作失败
	ErrBackend = keyring.ErrBackend

	// ErrInvalidArgument 空键或值超长
	ErrInvalidArgument = keyring.ErrInvalidArgument

	// ────────────────────────────────────────────────────────────────────────
	// 其他
	// ────────────────────────────────────────────────────────────────────────

	// ErrSinkUnreachable 事件接收方已关闭
	ErrSinkUnreachable = sink.ErrSinkUnreachable

	// ErrIdentityNotRegistered 尚未注册设备身份
	ErrIdentityNotRegistered = identity.ErrIdentityNotRegistered

	// ErrAppClosed 应用已关闭
	ErrAppClosed = errors.New("swarmdrop: app closed")
)
