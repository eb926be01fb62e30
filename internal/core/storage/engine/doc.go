// Package engine 定义存储引擎的内部接口与配置
//
// 本包扩展 pkg/interfaces 中的 StorageEngine 接口，增加 Sync，
// 供 keystore 凭据后端在写入后强制落盘。
//
// # 线程安全
//
// 所有接口实现必须保证线程安全。
package engine
