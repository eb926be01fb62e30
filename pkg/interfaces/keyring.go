package interfaces

// CredentialBackend 凭据后端
//
// 平台凭据存储（Keychain / Credential Manager / Secret Service /
// Keystore）的统一能力集。条目由 (service, key) 定位，值为不透明字符串。
//
// 实现必须保证线程安全；条目不存在时 Get 与 Delete 返回
// keyring.ErrNotFound（可用 errors.Is 判断）。
type CredentialBackend interface {
	// Kind 返回后端类型名称
	Kind() string

	// Set 写入（覆盖）条目
	Set(service, key, value string) error

	// Get 读取条目
	Get(service, key string) (string, error)

	// Delete 删除条目
	Delete(service, key string) error
}
