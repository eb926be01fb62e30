package types

import "errors"

// ============================================================================
//                              PeerID - 节点标识
// ============================================================================

// PeerID 节点唯一标识符
//
// 由身份公钥派生，使用引擎的规范字符串形式（libp2p 为 Base58 multihash，
// 例如 12D3KooW...）。本包只把它当作不透明字符串。
type PeerID string

// EmptyPeerID 空节点 ID
const EmptyPeerID PeerID = ""

// ErrEmptyPeerID 空节点 ID 错误
var ErrEmptyPeerID = errors.New("empty peer ID")

// String 返回 PeerID 字符串
func (id PeerID) String() string {
	return string(id)
}

// ShortString 返回 PeerID 的短字符串表示
//
// 取末尾 8 个字符：libp2p 的 PeerID 前缀（12D3KooW）对所有
// Ed25519 身份相同，末尾字符才有区分度。用于日志。
func (id PeerID) ShortString() string {
	s := string(id)
	if len(s) > 8 {
		return s[len(s)-8:]
	}
	return s
}

// IsEmpty 检查 PeerID 是否为空
func (id PeerID) IsEmpty() bool {
	return id == EmptyPeerID
}

// Validate 校验 PeerID 非空
func (id PeerID) Validate() error {
	if id.IsEmpty() {
		return ErrEmptyPeerID
	}
	return nil
}
