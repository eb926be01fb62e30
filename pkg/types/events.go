package types

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ============================================================================
//                              NodeEvent - 引擎事件
// ============================================================================

// NodeEventType 事件类型
type NodeEventType string

const (
	// EventListening 开始监听一个本地地址
	EventListening NodeEventType = "listening"

	// EventPeersDiscovered 局域网发现节点
	EventPeersDiscovered NodeEventType = "peersDiscovered"

	// EventPeerConnected 与节点建立第一条连接
	EventPeerConnected NodeEventType = "peerConnected"

	// EventPeerDisconnected 与节点的最后一条连接断开
	EventPeerDisconnected NodeEventType = "peerDisconnected"

	// EventIdentifyReceived 收到节点的 identify 信息
	EventIdentifyReceived NodeEventType = "identifyReceived"
)

// String 返回事件类型名称
func (t NodeEventType) String() string {
	return string(t)
}

// Valid 检查事件类型是否已知
func (t NodeEventType) Valid() bool {
	switch t {
	case EventListening, EventPeersDiscovered, EventPeerConnected,
		EventPeerDisconnected, EventIdentifyReceived:
		return true
	default:
		return false
	}
}

// ErrUnknownEventType 未知事件类型
var ErrUnknownEventType = errors.New("unknown node event type")

// NodeEvent 引擎产生的事件
//
// 按 Type 区分的联合类型，只有与 Type 对应的字段有意义：
//   - listening:        Addr
//   - peersDiscovered:  Peers
//   - peerConnected:    PeerID
//   - peerDisconnected: PeerID
//   - identifyReceived: PeerID, AgentVersion, ProtocolVersion
type NodeEvent struct {
	Type NodeEventType `json:"type"`

	Addr  string           `json:"addr,omitempty"`
	Peers []DiscoveredPeer `json:"peers,omitempty"`

	PeerID          PeerID `json:"peerId,omitempty"`
	AgentVersion    string `json:"agentVersion,omitempty"`
	ProtocolVersion string `json:"protocolVersion,omitempty"`
}

// DiscoveredPeer 发现的节点及其地址
//
// JSON 编码为二元组 [peerId, addr]，与宿主界面约定一致。
type DiscoveredPeer struct {
	PeerID PeerID
	Addr   string
}

// MarshalJSON 编码为 [peerId, addr]
func (p DiscoveredPeer) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{string(p.PeerID), p.Addr})
}

// UnmarshalJSON 从 [peerId, addr] 解码
func (p *DiscoveredPeer) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("discovered peer: %w", err)
	}
	p.PeerID = PeerID(pair[0])
	p.Addr = pair[1]
	return nil
}

// UnmarshalJSON 解码并校验事件类型
func (e *NodeEvent) UnmarshalJSON(data []byte) error {
	type plain NodeEvent
	var raw plain
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !raw.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownEventType, raw.Type)
	}
	*e = NodeEvent(raw)
	return nil
}

// String 返回事件的简短描述（用于日志）
func (e NodeEvent) String() string {
	switch e.Type {
	case EventListening:
		return fmt.Sprintf("listening(%s)", e.Addr)
	case EventPeersDiscovered:
		return fmt.Sprintf("peersDiscovered(%d)", len(e.Peers))
	case EventPeerConnected, EventPeerDisconnected:
		return fmt.Sprintf("%s(%s)", e.Type, e.PeerID.ShortString())
	case EventIdentifyReceived:
		return fmt.Sprintf("identifyReceived(%s, %s)", e.PeerID.ShortString(), e.AgentVersion)
	default:
		return string(e.Type)
	}
}

// ============================================================================
//                              构造函数
// ============================================================================

// ListeningEvent 创建 listening 事件
func ListeningEvent(addr string) NodeEvent {
	return NodeEvent{Type: EventListening, Addr: addr}
}

// PeersDiscoveredEvent 创建 peersDiscovered 事件
func PeersDiscoveredEvent(peers ...DiscoveredPeer) NodeEvent {
	return NodeEvent{Type: EventPeersDiscovered, Peers: peers}
}

// PeerConnectedEvent 创建 peerConnected 事件
func PeerConnectedEvent(id PeerID) NodeEvent {
	return NodeEvent{Type: EventPeerConnected, PeerID: id}
}

// PeerDisconnectedEvent 创建 peerDisconnected 事件
func PeerDisconnectedEvent(id PeerID) NodeEvent {
	return NodeEvent{Type: EventPeerDisconnected, PeerID: id}
}

// IdentifyReceivedEvent 创建 identifyReceived 事件
func IdentifyReceivedEvent(id PeerID, agentVersion, protocolVersion string) NodeEvent {
	return NodeEvent{
		Type:            EventIdentifyReceived,
		PeerID:          id,
		AgentVersion:    agentVersion,
		ProtocolVersion: protocolVersion,
	}
}
