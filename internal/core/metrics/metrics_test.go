package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhan593/SwarmDrop/config"
	"github.com/hhan593/SwarmDrop/pkg/types"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.SessionStarted()
	m.SessionStarted()
	m.SessionStartFailed()
	m.SetSessionActive(true)
	m.EventForwarded(types.EventListening)
	m.SinkFailure()
	m.CredentialOp("get", ResultNotFound)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.sessionsStarted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessionFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessionsActive))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.eventsForwarded.WithLabelValues("listening")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sinkFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.credentialOps.WithLabelValues("get", ResultNotFound)))

	m.SetSessionActive(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.sessionsActive))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.SessionStarted()
		m.SessionStartFailed()
		m.SetSessionActive(true)
		m.EventForwarded(types.EventPeerConnected)
		m.SinkFailure()
		m.CredentialOp("set", ResultOK)
	})
	assert.Nil(t, m.Registry())
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.SessionStarted()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "swarmdrop_session_started_total 1"))
}

func TestNewFromParams_Disabled(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Metrics.Enabled = false

	assert.Nil(t, NewFromParams(Params{UnifiedCfg: cfg}))
	assert.NotNil(t, NewFromParams(Params{}))
}
