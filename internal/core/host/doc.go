// Package host 实现基于 go-libp2p 的 P2P 引擎
//
// Engine 按会话配置构造 libp2p 主机，并把主机侧的通知翻译为节点事件：
//
//	libp2p 事件                              | 节点事件
//	-----------------------------------------|------------------
//	EvtLocalAddressesUpdated (Added)         | listening
//	mDNS HandlePeerFound                     | peersDiscovered
//	Notifiee.Connected（首条连接）             | peerConnected
//	Notifiee.Disconnected（最后一条连接）       | peerDisconnected
//	EvtPeerIdentificationCompleted           | identifyReceived
//
// mDNS 发现的节点会被自动拨号。
//
// # 事件通道
//
// 事件通道有界（容量来自会话配置），满时生产者阻塞。
// Shutdown 先停止所有生产者，关闭主机，最后关闭通道且只关闭一次。
//
// # 使用示例
//
//	engine := host.NewEngine()
//	client, events, err := engine.Construct(ctx, id, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Shutdown()
package host
