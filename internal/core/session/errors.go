package session

import "errors"

// ============================================================================
//                              错误定义
// ============================================================================

var (
	// ErrEngineConstructionFailed 引擎构造失败
	ErrEngineConstructionFailed = errors.New("session: engine construction failed")

	// ErrNoActiveSession 没有活跃会话
	ErrNoActiveSession = errors.New("session: no active session")

	// ErrNilIdentity 身份为空
	ErrNilIdentity = errors.New("session: identity is nil")
)
