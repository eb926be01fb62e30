// Package mocks 提供统一的测试 Mock 实现
//
// # 核心 Mock
//
//   - MockEngine: 模拟 interfaces.Engine，默认构造 MockClient
//   - MockClient: 模拟 interfaces.Client，持有事件通道，Shutdown 时关闭
//   - MockSink: 模拟 interfaces.EventSink，记录收到的事件
//   - MockBackend: 模拟 interfaces.CredentialBackend
//   - MockIdentity: 模拟 interfaces.Identity
//
// # 设计原则
//
// 1. 函数式注入: 每个 Mock 都支持通过 XxxFunc 字段注入自定义行为
// 2. 调用记录: 关键 Mock 记录调用次数，便于验证测试行为
//
// # 使用示例
//
//	engine := mocks.NewMockEngine()
//	engine.ConstructFunc = func(ctx context.Context, id interfaces.Identity, cfg types.SessionConfig) (interfaces.Client, <-chan types.NodeEvent, error) {
//	    return nil, nil, errors.New("bind: address in use")
//	}
package mocks
