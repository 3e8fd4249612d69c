package app

import (
	"context"
	"testing"

	"github.com/riskibarqy/scout-schedule/internal/config"
	"github.com/riskibarqy/scout-schedule/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(driver, dir string) config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":0",
		CORSAllowedOrigins: []string{"*"},
		TBABaseURL:         "http://127.0.0.1:1",
		StorageDriver:      driver,
		StorageDir:         dir,
		HistoryCapacity:    20,
		PrefetchWorkers:    2,
	}
}

func TestNewRuntime_FileStorage(t *testing.T) {
	dir := t.TempDir()
	rt, err := NewRuntime(context.Background(), testConfig(config.StorageFile, dir), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = rt.Close() })

	ctx := context.Background()
	require.NoError(t, rt.Credentials.Save(ctx, "key-1"))

	reopened, err := NewRuntime(ctx, testConfig(config.StorageFile, dir), logging.NewNop())
	require.NoError(t, err)
	key, ok := reopened.Credentials.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, "key-1", key)
}

func TestNewRuntime_MemoryStorage(t *testing.T) {
	rt, err := NewRuntime(context.Background(), testConfig(config.StorageMemory, ""), nil)
	require.NoError(t, err)

	assert.Empty(t, rt.Schedules.History(context.Background()))
	_, ok := rt.Credentials.Get(context.Background())
	assert.False(t, ok)
	assert.NoError(t, rt.Close())
}

func TestNewRuntime_UnknownDriver(t *testing.T) {
	_, err := NewRuntime(context.Background(), testConfig("redis", ""), logging.NewNop())
	require.Error(t, err)
}

func TestNewHTTPServer(t *testing.T) {
	rt, err := NewRuntime(context.Background(), testConfig(config.StorageMemory, ""), logging.NewNop())
	require.NoError(t, err)

	srv, err := NewHTTPServer(rt)
	require.NoError(t, err)
	assert.Equal(t, ":0", srv.Addr)
	assert.NotNil(t, srv.Handler)

	_, err = NewHTTPServer(nil)
	assert.Error(t, err)
}
