// Package eventbridge 把引擎事件转发到宿主接收端
//
// 每个会话启动一个 Bridge。Bridge 独占消费引擎的事件通道，
// 按接收顺序逐个投递到接收端：
//
//	engine ──chan NodeEvent──▶ Bridge ──Send──▶ EventSink
//
// 投递失败（接收端关闭、超时、任意错误）只记录日志与计数，
// 不会停止转发。事件通道被引擎关闭后 Bridge 自行退出，Done 随之关闭。
// Bridge 同一时刻最多持有一个事件，不做额外缓冲。
package eventbridge
