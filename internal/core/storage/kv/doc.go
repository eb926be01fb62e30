// Package kv 提供带前缀隔离的 KV 存储抽象层
//
// Store 在底层存储引擎之上提供命名空间隔离，
// 不同用途的数据使用不同前缀，共享同一个引擎实例。
//
//	creds := kv.New(eng, []byte("c/"))
//	creds.Put([]byte("svc/key"), ciphertext) // 实际键: c/svc/key
package kv
