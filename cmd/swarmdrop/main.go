// Package main 提供 swarmdrop 命令行入口
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	swarmdrop "github.com/hhan593/SwarmDrop"
	"github.com/hhan593/SwarmDrop/config"
	"github.com/hhan593/SwarmDrop/internal/util/logger"
)

var log = logger.Logger("cmd")

// newApp 根据全局参数创建应用上下文（测试可替换）
var newApp = func(c *cli.Context) (*swarmdrop.App, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	return swarmdrop.New(swarmdrop.WithConfig(cfg))
}

func main() {
	if err := cliApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// cliApp 创建 CLI 应用
func cliApp() *cli.App {
	return &cli.App{
		Name:    "swarmdrop",
		Usage:   "SwarmDrop 节点运行时",
		Version: swarmdrop.VersionInfo(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			runCommand(),
			keychainCommand(),
			identityCommand(),
			versionCommand(),
		},
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// 全局参数
// ═══════════════════════════════════════════════════════════════════════════
//
// 命令行参数只做运行时覆盖；持久化配置写在 YAML 文件里，
// 环境变量（SWARMDROP_ 前缀）覆盖文件。
//
// ═══════════════════════════════════════════════════════════════════════════
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "配置文件路径（YAML）",
			EnvVars: []string{"SWARMDROP_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "data-dir",
			Usage: "数据目录（默认: ./data）",
		},
		&cli.StringSliceFlag{
			Name:  "listen",
			Usage: "监听地址（multiaddr，可重复）",
		},
		&cli.BoolFlag{
			Name:  "no-mdns",
			Usage: "禁用局域网发现",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "日志文件路径",
		},
	}
}

// loadConfig 加载配置文件并应用命令行覆盖
func loadConfig(c *cli.Context) (*config.Config, error) {
	// 路径为空时仍读取环境变量
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}

	if dir := c.String("data-dir"); dir != "" {
		cfg.Storage.DataDir = dir
	}
	if addrs := c.StringSlice("listen"); len(addrs) > 0 {
		cfg.Node = cfg.Node.WithListenAddrs(addrs...)
	}
	if c.Bool("no-mdns") {
		cfg.Node = cfg.Node.WithMDNS(false)
	}
	if file := c.String("log-file"); file != "" {
		cfg.Log.File = file
	}

	return cfg, nil
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "打印版本信息",
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, swarmdrop.VersionInfo())
			return nil
		},
	}
}
