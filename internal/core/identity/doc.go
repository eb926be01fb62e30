// Package identity 提供节点身份
//
// 身份是一个不可变的 Ed25519 密钥对，由它派生稳定的 PeerID。
// 序列化格式为 libp2p 的 protobuf 私钥编码，与移动端、桌面端共享。
//
// Provider 通过凭据存储持久化身份：
//
//	p := identity.NewProvider(gateway)
//	id, err := p.LoadOrCreate()   // 首次运行生成，之后从凭据存储读取
//	peerID, err := p.Register(b)  // 安装外部提供的密钥对
package identity
