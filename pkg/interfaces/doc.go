// Package interfaces 定义 SwarmDrop 的公共接口
//
// 会话层只依赖这些接口，具体实现位于 internal/core 下：
//
//   - identity.go  - 身份（由 internal/core/identity 实现）
//   - engine.go    - P2P 引擎与客户端句柄（由 internal/core/host 实现）
//   - keyring.go   - 凭据后端（由 internal/core/keyring 实现）
//   - sink.go      - 事件接收端（由 internal/core/sink 实现）
//   - storage.go   - 键值存储引擎（由 internal/core/storage/engine/badger 实现）
package interfaces
