package keyring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/hhan593/SwarmDrop/config"
	"github.com/hhan593/SwarmDrop/pkg/interfaces"
)

// ============================================================================
// Fx 模块测试
// ============================================================================

func TestModule_Provides(t *testing.T) {
	var (
		gw *Gateway
		b  *Bootstrap
	)

	app := fxtest.New(t,
		Module(),
		fx.Provide(func() Factory { return StaticFactory(NewMemoryBackend()) }),
		fx.Populate(&gw, &b),
	)
	defer app.RequireStart().RequireStop()

	require.NotNil(t, gw)
	require.NotNil(t, b)
	assert.Equal(t, config.DefaultKeyringConfig().MaxValueSize, gw.MaxValueSize())

	require.NoError(t, gw.Set("k", "v"))
	value, found, err := gw.Get("k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", value)
}

func TestModule_UsesConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Keyring.MaxValueSize = 16

	var gw *Gateway
	app := fxtest.New(t,
		Module(),
		fx.Supply(cfg),
		fx.Provide(func() Factory { return StaticFactory(NewMemoryBackend()) }),
		fx.Populate(&gw),
	)
	defer app.RequireStart().RequireStop()

	assert.Equal(t, 16, gw.MaxValueSize())
	assert.ErrorIs(t, gw.Set("k", "0123456789abcdefX"), ErrInvalidArgument)
}

// 模块启动不构建后端
func TestModule_BackendIsLazy(t *testing.T) {
	called := false
	factory := func() (interfaces.CredentialBackend, error) {
		called = true
		return nil, errors.New("unavailable")
	}

	app := fxtest.New(t,
		Module(),
		fx.Provide(func() Factory { return factory }),
		fx.Invoke(func(*Gateway) {}),
	)
	app.RequireStart().RequireStop()

	assert.False(t, called)
}

// 停止后凭据存储不再可用
func TestModule_StopClosesStore(t *testing.T) {
	var gw *Gateway
	app := fxtest.New(t,
		Module(),
		fx.Provide(func() Factory { return StaticFactory(NewMemoryBackend()) }),
		fx.Populate(&gw),
	)
	app.RequireStart().RequireStop()

	_, _, err := gw.Get("k")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
