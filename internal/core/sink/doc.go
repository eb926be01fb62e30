// Package sink 提供事件接收端实现
//
// 接收端是事件桥接的出口，宿主通过它获得有序的节点事件流：
//
//   - Channel: 有界通道，供进程内消费者读取
//   - WebSocket: 以 JSON 文本帧推送给前端
//   - Func: 把普通函数适配为接收端
//
// 所有接收端在关闭后 Send 返回 ErrSinkUnreachable。
package sink
