// Package types 定义 SwarmDrop 的基础类型
//
// 这是整个系统的最底层包，不依赖任何其他 SwarmDrop 内部包。
// 所有类型都是纯值类型，用于在引擎、会话层与宿主之间传递数据。
//
// # 文件组织
//
//   - ids.go      - PeerID
//   - events.go   - NodeEvent（引擎事件，推送给宿主）
//   - session.go  - SessionConfig、Features
//
// # NodeEvent 编码
//
// NodeEvent 以带 "type" 字段的 JSON 对象推送给宿主：
//
//	{"type":"listening","addr":"/ip4/192.168.1.2/tcp/4001"}
//	{"type":"peersDiscovered","peers":[["12D3KooW...","/ip4/..."]]}
//	{"type":"peerConnected","peerId":"12D3KooW..."}
//	{"type":"peerDisconnected","peerId":"12D3KooW..."}
//	{"type":"identifyReceived","peerId":"12D3KooW...","agentVersion":"...","protocolVersion":"..."}
package types
