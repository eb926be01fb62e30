package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hhan593/SwarmDrop/pkg/types"
)

const namespace = "swarmdrop"

// 凭据操作结果标签
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Metrics 指标集合
type Metrics struct {
	registry *prometheus.Registry

	sessionsStarted prometheus.Counter
	sessionFailures prometheus.Counter
	sessionsActive  prometheus.Gauge
	eventsForwarded *prometheus.CounterVec
	sinkFailures    prometheus.Counter
	credentialOps   *prometheus.CounterVec
}

// New 创建指标集合并注册到独立的 Registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "started_total",
			Help:      "Sessions started successfully.",
		}),
		sessionFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "start_failures_total",
			Help:      "Session starts that failed during engine construction.",
		}),
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "active",
			Help:      "Whether a session is currently installed.",
		}),
		eventsForwarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bridge",
			Name:      "events_forwarded_total",
			Help:      "Node events delivered to the host sink.",
		}, []string{"type"}),
		sinkFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bridge",
			Name:      "sink_failures_total",
			Help:      "Node events the host sink failed to accept.",
		}),
		credentialOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "keyring",
			Name:      "operations_total",
			Help:      "Credential store operations by operation and result.",
		}, []string{"op", "result"}),
	}

	m.registry.MustRegister(
		m.sessionsStarted,
		m.sessionFailures,
		m.sessionsActive,
		m.eventsForwarded,
		m.sinkFailures,
		m.credentialOps,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry 返回底层 Registry
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler 返回 /metrics HTTP 处理器
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ============================================================================
//                              会话
// ============================================================================

// SessionStarted 记录一次成功启动
func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.sessionsStarted.Inc()
}

// SessionStartFailed 记录一次启动失败
func (m *Metrics) SessionStartFailed() {
	if m == nil {
		return
	}
	m.sessionFailures.Inc()
}

// SetSessionActive 设置活跃会话状态
func (m *Metrics) SetSessionActive(active bool) {
	if m == nil {
		return
	}
	if active {
		m.sessionsActive.Set(1)
	} else {
		m.sessionsActive.Set(0)
	}
}

// ============================================================================
//                              事件桥接
// ============================================================================

// EventForwarded 记录一次成功投递
func (m *Metrics) EventForwarded(t types.NodeEventType) {
	if m == nil {
		return
	}
	m.eventsForwarded.WithLabelValues(string(t)).Inc()
}

// SinkFailure 记录一次投递失败
func (m *Metrics) SinkFailure() {
	if m == nil {
		return
	}
	m.sinkFailures.Inc()
}

// ============================================================================
//                              凭据
// ============================================================================

// CredentialOp 记录一次凭据操作
func (m *Metrics) CredentialOp(op, result string) {
	if m == nil {
		return
	}
	m.credentialOps.WithLabelValues(op, result).Inc()
}
