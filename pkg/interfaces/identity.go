package interfaces

import "github.com/hhan593/SwarmDrop/pkg/types"

// Identity 节点身份
//
// 不可变的密钥对，在进程生命周期内只读。
type Identity interface {
	// PeerID 返回由公钥派生的节点 ID
	PeerID() types.PeerID

	// Bytes 返回私钥的序列化形式（libp2p protobuf 编码）
	Bytes() ([]byte, error)
}
