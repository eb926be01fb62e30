// Package keyring 提供平台凭据存储
//
// 本包由三层组成：
//
//	┌─────────────────────────────────────────────┐
//	│  Gateway   get / set / delete，归一化不存在语义  │
//	├─────────────────────────────────────────────┤
//	│  Bootstrap 首次使用时按平台选择并安装唯一后端     │
//	├─────────────────────────────────────────────┤
//	│  后端  keychain | wincred | secret-service    │
//	│        | keystore | memory                   │
//	└─────────────────────────────────────────────┘
//
// # 平台选择
//
//	GOOS                         | 后端
//	-----------------------------|----------------
//	darwin, ios                  | keychain
//	windows                      | wincred
//	linux, freebsd, openbsd, ... | secret-service
//	android                      | keystore
//	其他                          | 不支持
//
// keychain / wincred / secret-service 通过 go-keyring 访问系统服务；
// keystore 把 age 加密后的值写入本地 BadgerDB。
//
// # 一次性初始化
//
// Bootstrap.EnsureInitialized 可被任意数量的调用方并发调用，
// 后端只构建一次；构建失败的错误是粘性的，之后所有调用都返回同一个
// ErrStoreUnavailable。
//
// # 命名空间
//
// 所有条目都位于固定的服务名 Service（com.gy.swarmdrop）下。
package keyring
