// Package session 管理唯一的活跃 P2P 会话
//
// 状态只有两种：无会话，或一个活跃会话（客户端句柄 + 配对子管理器 +
// 事件桥接）。
//
// # 启动
//
//  1. 由节点配置与进程信息构建 SessionConfig
//  2. 不持锁调用引擎构造客户端与事件通道
//  3. 启动事件桥接，构建配对子管理器
//  4. 持锁替换会话槽，随后关闭被替换的旧会话
//
// 构造失败时返回 ErrEngineConstructionFailed，原有会话不受影响。
//
// # 关闭
//
// Shutdown 移除并关闭当前会话：关闭配对子管理器，停止客户端，
// 再等待旧桥接排空（受 ctx 与 DrainTimeout 限制）。没有会话时为空操作。
package session
