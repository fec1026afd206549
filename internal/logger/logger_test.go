package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitDevelopment(t *testing.T) {
	require.NoError(t, Init("development", "debug"))
	assert.True(t, Get().Core().Enabled(zapcore.DebugLevel))
}

func TestInitProduction(t *testing.T) {
	require.NoError(t, Init("production", "warn"))
	assert.False(t, Get().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Get().Core().Enabled(zapcore.WarnLevel))
}

func TestInitDefaultLevel(t *testing.T) {
	require.NoError(t, Init("production", ""))
	assert.True(t, Get().Core().Enabled(zapcore.InfoLevel))
}

func TestInitInvalidLevel(t *testing.T) {
	assert.Error(t, Init("production", "loud"))
}

func TestGetWithoutInit(t *testing.T) {
	globalLogger = nil
	assert.NotNil(t, Get())
}
