package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

func identityCommand() *cli.Command {
	return &cli.Command{
		Name:  "identity",
		Usage: "查看或管理设备身份",
		Action: func(c *cli.Context) error {
			a, err := newApp(c)
			if err != nil {
				return err
			}
			defer a.Close(context.Background())

			peerID, err := a.LoadOrCreateIdentity()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, peerID)
			return nil
		},
		Subcommands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "生成新身份并替换当前身份，打印 base64 私钥",
				Action: func(c *cli.Context) error {
					a, err := newApp(c)
					if err != nil {
						return err
					}
					defer a.Close(context.Background())

					keypair, peerID, err := a.GenerateIdentity()
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, peerID)
					fmt.Fprintln(c.App.Writer, base64.StdEncoding.EncodeToString(keypair))
					return nil
				},
			},
			{
				Name:      "register",
				Usage:     "注册外部提供的私钥（base64 编码的 libp2p protobuf）",
				ArgsUsage: "KEYPAIR",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.ShowSubcommandHelp(c)
					}
					raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(c.Args().First()))
					if err != nil {
						return fmt.Errorf("私钥不是有效的 base64: %w", err)
					}

					a, err := newApp(c)
					if err != nil {
						return err
					}
					defer a.Close(context.Background())

					peerID, err := a.RegisterIdentity(raw)
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, peerID)
					return nil
				},
			},
		},
	}
}
