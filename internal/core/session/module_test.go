package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/hhan593/SwarmDrop/config"
	"github.com/hhan593/SwarmDrop/pkg/interfaces"
	"github.com/hhan593/SwarmDrop/tests/mocks"
)

// ============================================================================
// Fx 模块测试
// ============================================================================

func TestModule_Provides(t *testing.T) {
	engine := mocks.NewMockEngine()
	cfg := config.NewConfig()
	cfg.Node.EventBuffer = 32

	var m *Manager
	app := fxtest.New(t,
		Module(),
		fx.Supply(cfg),
		fx.Supply(fx.Annotated{Name: "version", Target: "9.9.9"}),
		fx.Provide(func() interfaces.Engine { return engine }),
		fx.Populate(&m),
	)
	defer app.RequireStart().RequireStop()

	require.NotNil(t, m)
	_, err := m.Start(context.Background(), mocks.NewMockIdentity(testPeer), mocks.NewMockSink())
	require.NoError(t, err)

	cfgs := engine.Configs()
	require.Len(t, cfgs, 1)
	assert.Equal(t, 32, cfgs[0].EventBuffer)
	assert.Contains(t, cfgs[0].AgentVersion, "swarmdrop/9.9.9")
}

// OnStop 关闭活跃会话
func TestModule_StopShutsDownSession(t *testing.T) {
	engine := mocks.NewMockEngine()

	var m *Manager
	app := fxtest.New(t,
		Module(),
		fx.Provide(func() interfaces.Engine { return engine }),
		fx.Populate(&m),
	)
	app.RequireStart()

	_, err := m.Start(context.Background(), mocks.NewMockIdentity(testPeer), mocks.NewMockSink())
	require.NoError(t, err)
	client := engine.LastClient()

	app.RequireStop()
	assert.False(t, m.Active())
	assert.True(t, client.Stopped())
}
