package host

import (
	"context"
	"sync"
	"time"

	"github.com/libp2p/go-libp2p/core/event"
	"github.com/libp2p/go-libp2p/core/host"
	"github.com/libp2p/go-libp2p/core/network"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/libp2p/go-libp2p/p2p/discovery/mdns"
	ma "github.com/multiformats/go-multiaddr"
	"go.uber.org/multierr"

	"github.com/hhan593/SwarmDrop/pkg/interfaces"
	"github.com/hhan593/SwarmDrop/pkg/types"
)

// Client libp2p 引擎客户端
type Client struct {
	host        host.Host
	sub         event.Subscription
	notifee     *network.NotifyBundle
	dialTimeout time.Duration

	events chan types.NodeEvent

	// emitMu 保护 stopped；生产者持读锁发送，Shutdown 持写锁置位
	emitMu  sync.RWMutex
	stopped bool

	// stopCh 唤醒阻塞中的生产者
	stopCh chan struct{}

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mdnsMu sync.Mutex
	mdns   mdns.Service

	shutdownOnce sync.Once
	shutdownErr  error
	done         chan struct{}
}

var _ interfaces.Client = (*Client)(nil)

func newClient(h host.Host, sub event.Subscription, buffer int, dialTimeout time.Duration) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Client{
		host:        h,
		sub:         sub,
		dialTimeout: dialTimeout,
		events:      make(chan types.NodeEvent, buffer),
		stopCh:      make(chan struct{}),
		ctx:         ctx,
		cancel:      cancel,
		done:        make(chan struct{}),
	}
	c.notifee = &network.NotifyBundle{
		ConnectedF:    c.onConnected,
		DisconnectedF: c.onDisconnected,
	}
	return c
}

// start 注册网络通知并启动事件循环
func (c *Client) start() {
	c.host.Network().Notify(c.notifee)

	c.wg.Add(1)
	go c.eventLoop()
}

func (c *Client) setMDNS(svc mdns.Service) {
	c.mdnsMu.Lock()
	defer c.mdnsMu.Unlock()
	c.mdns = svc
}

// ============================================================================
//                              Client 接口
// ============================================================================

// LocalPeer 返回本地节点 ID
func (c *Client) LocalPeer() types.PeerID {
	return types.PeerID(c.host.ID().String())
}

// Host 返回底层 libp2p 主机
func (c *Client) Host() host.Host {
	return c.host
}

// Addrs 返回当前监听地址
func (c *Client) Addrs() []string {
	return multiaddrsToStrings(c.host.Addrs())
}

// Done 在引擎完全停止、事件通道关闭后关闭
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Shutdown 停止引擎，幂等
//
// 顺序：唤醒并禁止生产者，停止 mDNS、通知与订阅，关闭主机，
// 等待内部 goroutine 退出，最后关闭事件通道。
func (c *Client) Shutdown() error {
	c.shutdownOnce.Do(func() {
		close(c.stopCh)
		c.cancel()

		c.emitMu.Lock()
		c.stopped = true
		c.emitMu.Unlock()

		var errs error

		c.mdnsMu.Lock()
		if c.mdns != nil {
			errs = multierr.Append(errs, c.mdns.Close())
		}
		c.mdnsMu.Unlock()

		c.host.Network().StopNotify(c.notifee)
		errs = multierr.Append(errs, c.sub.Close())
		errs = multierr.Append(errs, c.host.Close())

		c.wg.Wait()
		close(c.events)
		close(c.done)

		c.shutdownErr = errs
		log.Info("引擎已停止", "peerID", c.LocalPeer().ShortString())
	})
	return c.shutdownErr
}

// ============================================================================
//                              事件生产
// ============================================================================

// emit 发送事件；引擎停止后丢弃
func (c *Client) emit(ev types.NodeEvent) {
	c.emitMu.RLock()
	defer c.emitMu.RUnlock()

	if c.stopped {
		return
	}
	select {
	case c.events <- ev:
	case <-c.stopCh:
	}
}

// eventLoop 把事件总线上的事件翻译为节点事件
func (c *Client) eventLoop() {
	defer c.wg.Done()

	announced := make(map[string]struct{})
	for {
		select {
		case <-c.stopCh:
			return
		case e, ok := <-c.sub.Out():
			if !ok {
				return
			}
			switch evt := e.(type) {
			case event.EvtLocalAddressesUpdated:
				for _, ua := range evt.Current {
					if ua.Action != event.Added && ua.Action != event.Maintained {
						continue
					}
					addr := ua.Address.String()
					if _, seen := announced[addr]; seen {
						continue
					}
					announced[addr] = struct{}{}
					c.emit(types.ListeningEvent(addr))
				}
				for _, ua := range evt.Removed {
					delete(announced, ua.Address.String())
				}

			case event.EvtPeerIdentificationCompleted:
				c.emit(types.IdentifyReceivedEvent(
					types.PeerID(evt.Peer.String()),
					evt.AgentVersion,
					evt.ProtocolVersion,
				))
			}
		}
	}
}

// onConnected 与节点的首条连接建立
func (c *Client) onConnected(n network.Network, conn network.Conn) {
	p := conn.RemotePeer()
	if len(n.ConnsToPeer(p)) != 1 {
		return
	}
	c.emit(types.PeerConnectedEvent(types.PeerID(p.String())))
}

// onDisconnected 与节点的最后一条连接断开
func (c *Client) onDisconnected(n network.Network, conn network.Conn) {
	p := conn.RemotePeer()
	if n.Connectedness(p) == network.Connected {
		return
	}
	c.emit(types.PeerDisconnectedEvent(types.PeerID(p.String())))
}

// ============================================================================
//                              mDNS
// ============================================================================

// mdnsNotifee 处理 mDNS 发现
type mdnsNotifee struct {
	client *Client
}

// HandlePeerFound 上报发现的节点并自动拨号
func (m *mdnsNotifee) HandlePeerFound(pi peer.AddrInfo) {
	c := m.client
	if pi.ID == c.host.ID() || len(pi.Addrs) == 0 {
		return
	}

	peers := make([]types.DiscoveredPeer, 0, len(pi.Addrs))
	for _, a := range pi.Addrs {
		peers = append(peers, types.DiscoveredPeer{
			PeerID: types.PeerID(pi.ID.String()),
			Addr:   a.String(),
		})
	}
	c.emit(types.PeersDiscoveredEvent(peers...))

	c.emitMu.RLock()
	stopped := c.stopped
	if !stopped {
		c.wg.Add(1)
	}
	c.emitMu.RUnlock()
	if stopped {
		return
	}

	go func() {
		defer c.wg.Done()
		c.dial(pi)
	}()
}

// dial 拨号发现的节点
func (c *Client) dial(pi peer.AddrInfo) {
	if c.host.Network().Connectedness(pi.ID) == network.Connected {
		return
	}
	ctx, cancel := context.WithTimeout(c.ctx, c.dialTimeout)
	defer cancel()

	if err := c.host.Connect(ctx, pi); err != nil {
		log.Debug("mDNS 节点拨号失败", "peer", pi.ID.ShortString(), "error", err)
		return
	}
	log.Debug("已连接 mDNS 节点", "peer", pi.ID.ShortString())
}

// multiaddrsToStrings 转换地址列表
func multiaddrsToStrings(addrs []ma.Multiaddr) []string {
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.String()
	}
	return out
}
