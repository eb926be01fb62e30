// Package badger 提供基于 BadgerDB 的存储引擎实现
//
// 仅实现点操作（Get/Put/Delete/Has），并在后台定期回收值日志。
//
// # 使用示例
//
//	db, err := badger.New(engine.DefaultConfig("/data/keystore.db"))
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.Put([]byte("key"), []byte("value")); err != nil {
//	    return err
//	}
package badger
