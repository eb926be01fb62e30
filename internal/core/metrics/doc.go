// Package metrics 提供 Prometheus 监控指标
//
// Metrics 持有一个独立的 prometheus.Registry，记录：
//   - 会话启动次数与启动失败次数
//   - 当前活跃会话数
//   - 已转发事件数（按事件类型）与接收端投递失败数
//   - 凭据操作次数（按操作与结果）
//
// 所有方法对 nil 接收者安全，禁用指标时各组件无需判空。
//
// # 使用示例
//
//	m := metrics.New()
//	m.SessionStarted()
//	http.Handle("/metrics", m.Handler())
package metrics
