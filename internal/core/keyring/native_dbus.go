//go:build linux || freebsd || openbsd || netbsd || dragonfly

package keyring

import (
	"fmt"
	"slices"

	"github.com/godbus/dbus/v5"
)

// secretServiceName Secret Service 在会话总线上的名称
const secretServiceName = "org.freedesktop.secrets"

// probeNative 探测会话总线上是否存在 Secret Service
//
// 服务既可以已在运行，也可以是可激活的。
func probeNative(kind Kind) error {
	if kind != KindSecretService {
		return nil
	}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}
	defer conn.Close()

	for _, method := range []string{
		"org.freedesktop.DBus.ListNames",
		"org.freedesktop.DBus.ListActivatableNames",
	} {
		var names []string
		if err := conn.BusObject().Call(method, 0).Store(&names); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
		if slices.Contains(names, secretServiceName) {
			return nil
		}
	}
	return ErrSecretServiceMissing
}
