package context

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAppContextFlagsOverrideConfig(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	path := filepath.Join(t.TempDir(), "hellosrv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8081\nlog:\n  level: warn\n"), 0644))

	ctx, err := InitAppContext(context.Background(), GlobalFlags{ConfigPath: path, Debug: true})
	require.NoError(t, err)

	assert.Equal(t, 8081, ctx.Config.Server.Port)
	assert.True(t, ctx.Config.App.Debug)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.Equal(t, path, ctx.Viper.ConfigFileUsed())
	assert.NotNil(t, ctx.Logger)
}

func TestInitAppContextInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hellosrv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 70000\n"), 0644))

	_, err := InitAppContext(context.Background(), GlobalFlags{ConfigPath: path})
	assert.Error(t, err)
}
