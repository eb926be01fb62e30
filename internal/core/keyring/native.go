package keyring

import (
	"errors"
	"fmt"

	gokeyring "github.com/zalando/go-keyring"
)

// NativeBackend 系统凭据服务后端
//
// 通过 go-keyring 访问 macOS/iOS 钥匙串、Windows 凭据管理器
// 或 freedesktop Secret Service。
type NativeBackend struct {
	kind Kind
}

// NewNativeBackend 创建系统凭据服务后端
//
// 构建时探测系统服务是否可达；不可达时返回错误，由 Bootstrap
// 转为 ErrStoreUnavailable。
func NewNativeBackend(kind Kind) (*NativeBackend, error) {
	switch kind {
	case KindKeychain, KindWinCred, KindSecretService:
	default:
		return nil, fmt.Errorf("keyring: %s is not a native backend", kind)
	}
	if err := probeNative(kind); err != nil {
		return nil, err
	}
	return &NativeBackend{kind: kind}, nil
}

// Kind 返回后端类型名称
func (b *NativeBackend) Kind() string {
	return string(b.kind)
}

// Set 写入（覆盖）条目
func (b *NativeBackend) Set(service, key, value string) error {
	return convertNativeError(gokeyring.Set(service, key, value))
}

// Get 读取条目
func (b *NativeBackend) Get(service, key string) (string, error) {
	value, err := gokeyring.Get(service, key)
	if err != nil {
		return "", convertNativeError(err)
	}
	return value, nil
}

// Delete 删除条目
func (b *NativeBackend) Delete(service, key string) error {
	return convertNativeError(gokeyring.Delete(service, key))
}

// convertNativeError 转换 go-keyring 错误
func convertNativeError(err error) error {
	if errors.Is(err, gokeyring.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
