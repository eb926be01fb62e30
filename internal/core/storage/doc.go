// Package storage 提供本地持久化存储
//
// 存储基于 BadgerDB，目前只服务于 keystore 凭据后端：
// 在没有系统凭据服务的平台上，加密后的凭据写入本地 BadgerDB 文件。
//
//	┌─────────────────────────────────────┐
//	│     keyring (keystore 后端)          │
//	└─────────────────────────────────────┘
//	                  │
//	                  ▼
//	┌─────────────────────────────────────┐
//	│  kv.Store  带前缀隔离的 KV 抽象       │
//	├─────────────────────────────────────┤
//	│  engine/badger  BadgerDB 实现        │
//	└─────────────────────────────────────┘
//
// # 键空间设计
//
//	前缀     | 模块           | 说明
//	---------|----------------|------------------
//	c/       | keystore       | 加密后的凭据
//
// # 使用示例
//
//	eng, err := storage.Open("/data/keystore.db", nil)
//	if err != nil {
//	    return err
//	}
//	defer eng.Close()
//
//	creds := storage.NewKVStore(eng, storage.PrefixCredentials)
package storage
