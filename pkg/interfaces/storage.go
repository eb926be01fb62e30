package interfaces

// StorageEngine 存储引擎基础接口
//
// 提供键值存储的点操作。SwarmDrop 内部使用 BadgerDB 实现，
// 仅用于 keystore 凭据后端（加密后的值落盘）。
//
// 线程安全：实现必须保证所有方法的线程安全性。
//
// 示例:
//
//	eng, err := badger.New(engine.DefaultConfig("/data/keystore.db"))
//	if err != nil {
//	    return err
//	}
//	defer eng.Close()
//
//	if err := eng.Put([]byte("key"), []byte("value")); err != nil {
//	    return err
//	}
type StorageEngine interface {
	// Get 获取指定键的值
	//
	// 返回值的副本；键不存在时返回 ErrNotFound。
	Get(key []byte) ([]byte, error)

	// Put 设置键值对，已存在则覆盖
	Put(key, value []byte) error

	// Delete 删除指定键
	//
	// 如果键不存在，不返回错误（幂等操作）。
	Delete(key []byte) error

	// Has 检查键是否存在
	Has(key []byte) (bool, error)

	// Close 关闭存储引擎，多次调用是安全的
	Close() error
}
