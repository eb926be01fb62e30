package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hhan593/SwarmDrop/internal/core/sink"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "启动节点并转发事件，直到收到 SIGINT/SIGTERM",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "http",
				Usage: "事件与指标的 HTTP 地址（默认使用 metrics.listen_addr，\"-\" 表示禁用）",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "不向标准输出打印事件",
			},
		},
		Action: runNode,
	}
}

func runNode(c *cli.Context) error {
	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	peerID, err := a.LoadOrCreateIdentity()
	if err != nil {
		return fmt.Errorf("加载身份失败: %w", err)
	}

	events := sink.NewBroadcast()
	if !c.Bool("quiet") {
		events.Add(writerSink(c.App.Writer))
	}

	g, gctx := errgroup.WithContext(c.Context)

	addr := c.String("http")
	if addr == "" {
		addr = a.Config().Metrics.ListenAddr
	}

	var srv *http.Server
	if addr != "" && addr != "-" {
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("监听 %s 失败: %w", addr, err)
		}
		srv = &http.Server{
			Handler:           newMux(a, events),
			ReadHeaderTimeout: readHeaderTimeout,
		}
		g.Go(func() error {
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http 服务失败: %w", err)
			}
			return nil
		})
		log.Info("HTTP 宿主接口已启动", "addr", ln.Addr().String())
	}

	status, err := a.Start(c.Context, events)
	if err != nil {
		if srv != nil {
			_ = srv.Close()
		}
		_ = g.Wait()
		return fmt.Errorf("启动会话失败: %w", err)
	}
	fmt.Fprintf(c.App.ErrWriter, "peer %s session %s\n", peerID, status.SessionID)

	g.Go(func() error {
		// 收到信号、HTTP 服务失败或应用关闭时返回
		err := a.Wait(gctx)
		if srv != nil {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}
		return err
	})

	return g.Wait()
}
