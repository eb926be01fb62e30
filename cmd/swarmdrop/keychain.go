package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
)

// errKeyNotFound get 未找到条目时的退出错误
var errKeyNotFound = errors.New("key not found")

func keychainCommand() *cli.Command {
	return &cli.Command{
		Name:    "keychain",
		Aliases: []string{"kc"},
		Usage:   "读写 com.gy.swarmdrop 命名空间下的凭据",
		Subcommands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "读取凭据",
				ArgsUsage: "KEY",
				Action:    keychainGet,
			},
			{
				Name:      "set",
				Usage:     "写入（覆盖）凭据",
				ArgsUsage: "KEY VALUE",
				Action:    keychainSet,
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "删除凭据（不存在视为成功）",
				ArgsUsage: "KEY",
				Action:    keychainDelete,
			},
			{
				Name:   "backend",
				Usage:  "打印当前平台选用的凭据后端",
				Action: keychainBackend,
			},
		},
	}
}

func keychainGet(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.ShowSubcommandHelp(c)
	}
	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	value, found, err := a.CredentialGet(c.Args().First())
	if err != nil {
		return err
	}
	if !found {
		return cli.Exit(errKeyNotFound, 2)
	}
	fmt.Fprintln(c.App.Writer, value)
	return nil
}

func keychainSet(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.ShowSubcommandHelp(c)
	}
	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	return a.CredentialSet(c.Args().Get(0), c.Args().Get(1))
}

func keychainDelete(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.ShowSubcommandHelp(c)
	}
	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	return a.CredentialDelete(c.Args().First())
}

func keychainBackend(c *cli.Context) error {
	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	kind, err := a.CredentialBackend()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, kind)
	return nil
}
