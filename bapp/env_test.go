package bapp_test

import (
	"testing"

	"github.com/advdv/broute/bapp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("BROUTE_PORT", "9999")
	t.Setenv("BROUTE_SERVICE_NAME", "some-service")
	t.Setenv("BROUTE_LOG_LEVEL", "debug")

	env, err := bapp.ParseEnv[bapp.BaseEnvironment]()()
	require.NoError(t, err)

	assert.Equal(t, 9999, env.Port)
	assert.Equal(t, "some-service", env.ServiceName)
	assert.Equal(t, zapcore.DebugLevel, env.LogLevel)
}

func TestParseEnvDefaults(t *testing.T) {
	t.Setenv("BROUTE_SERVICE_NAME", "some-service")

	env, err := bapp.ParseEnv[bapp.BaseEnvironment]()()
	require.NoError(t, err)

	assert.Equal(t, 8080, env.Port)
	assert.Equal(t, zapcore.InfoLevel, env.LogLevel)
}
