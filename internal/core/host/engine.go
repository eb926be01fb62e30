package host

import (
	"context"
	"errors"
	"fmt"

	"github.com/libp2p/go-libp2p"
	"github.com/libp2p/go-libp2p/core/crypto"
	"github.com/libp2p/go-libp2p/core/event"
	"github.com/libp2p/go-libp2p/p2p/discovery/mdns"

	"github.com/hhan593/SwarmDrop/internal/util/logger"
	"github.com/hhan593/SwarmDrop/pkg/interfaces"
	"github.com/hhan593/SwarmDrop/pkg/types"
)

var log = logger.Logger("core/host")

// ErrNilIdentity 身份为空
var ErrNilIdentity = errors.New("host: identity is nil")

// Engine libp2p 引擎
type Engine struct {
	opts engineOptions
}

var _ interfaces.Engine = (*Engine)(nil)

// NewEngine 创建引擎
func NewEngine(opts ...Option) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{opts: o}
}

// Construct 启动 libp2p 主机并返回客户端与事件通道
//
// 任何一步失败都会关闭已创建的主机，不留下运行中的资源。
func (e *Engine) Construct(ctx context.Context, id interfaces.Identity, cfg types.SessionConfig) (interfaces.Client, <-chan types.NodeEvent, error) {
	if id == nil {
		return nil, nil, ErrNilIdentity
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	keyBytes, err := id.Bytes()
	if err != nil {
		return nil, nil, fmt.Errorf("host: read identity: %w", err)
	}
	priv, err := crypto.UnmarshalPrivateKey(keyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("host: decode identity: %w", err)
	}

	h, err := libp2p.New(e.libp2pOptions(priv, cfg)...)
	if err != nil {
		return nil, nil, fmt.Errorf("host: create libp2p host: %w", err)
	}

	sub, err := h.EventBus().Subscribe([]interface{}{
		new(event.EvtLocalAddressesUpdated),
		new(event.EvtPeerIdentificationCompleted),
	})
	if err != nil {
		_ = h.Close()
		return nil, nil, fmt.Errorf("host: subscribe events: %w", err)
	}

	c := newClient(h, sub, cfg.EventBuffer, e.opts.dialTimeout)
	c.start()

	if cfg.Features.MDNS {
		svc := mdns.NewMdnsService(h, e.opts.mdnsServiceName, &mdnsNotifee{client: c})
		if err := svc.Start(); err != nil {
			// 局域网发现不可用不影响其余功能
			log.Warn("mDNS 启动失败", "error", err)
		} else {
			c.setMDNS(svc)
		}
	}

	log.Info("引擎已启动",
		"peerID", c.LocalPeer().ShortString(),
		"agent", cfg.AgentVersion,
		"mdns", cfg.Features.MDNS)
	return c, c.events, nil
}

// libp2pOptions 由会话配置构建 libp2p 选项
func (e *Engine) libp2pOptions(priv crypto.PrivKey, cfg types.SessionConfig) []libp2p.Option {
	opts := []libp2p.Option{
		libp2p.Identity(priv),
		libp2p.ProtocolVersion(cfg.ProtocolVersion),
		libp2p.UserAgent(cfg.AgentVersion),
	}

	if len(cfg.ListenAddrs) > 0 {
		opts = append(opts, libp2p.ListenAddrStrings(cfg.ListenAddrs...))
	} else {
		opts = append(opts, libp2p.NoListenAddrs)
	}

	if cfg.Features.RelayClient {
		opts = append(opts, libp2p.EnableRelay())
		if cfg.Features.HolePunching {
			opts = append(opts, libp2p.EnableHolePunching())
		}
	} else {
		opts = append(opts, libp2p.DisableRelay())
		if cfg.Features.HolePunching {
			log.Warn("打洞依赖中继客户端，已忽略")
		}
	}

	if cfg.Features.AutoNAT {
		opts = append(opts, libp2p.EnableNATService())
	}

	return append(opts, e.opts.extra...)
}
