package keyring

import (
	"fmt"
	"runtime"
)

// Service 凭据命名空间
const Service = "com.gy.swarmdrop"

// Kind 后端类型
type Kind string

const (
	// KindKeychain Apple 钥匙串
	KindKeychain Kind = "keychain"

	// KindWinCred Windows 凭据管理器
	KindWinCred Kind = "wincred"

	// KindSecretService freedesktop Secret Service（D-Bus）
	KindSecretService Kind = "secret-service"

	// KindKeystore 本地加密 keystore 文件
	KindKeystore Kind = "keystore"

	// KindMemory 进程内存（测试用）
	KindMemory Kind = "memory"
)

// String 实现 fmt.Stringer
func (k Kind) String() string {
	return string(k)
}

// SelectKind 按 GOOS 选择后端类型
//
// 纯函数：相同输入总是返回相同结果。
func SelectKind(goos string) (Kind, error) {
	switch goos {
	case "darwin", "ios":
		return KindKeychain, nil
	case "windows":
		return KindWinCred, nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return KindSecretService, nil
	case "android":
		return KindKeystore, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

// CurrentKind 返回当前平台的后端类型
func CurrentKind() (Kind, error) {
	return SelectKind(runtime.GOOS)
}
