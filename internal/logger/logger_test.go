package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "production", ""} {
		l, err := New(mode)
		require.NoError(t, err, mode)
		require.NotNil(t, l.SugaredLogger)
	}
}

func TestLogger_WithCarriesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("component", "test").Warn("store unreadable", "path", "data.json")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "store unreadable", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "test", fields["component"])
	assert.Equal(t, "data.json", fields["path"])
}

func TestNewNop_Discards(t *testing.T) {
	l := NewNop()
	l.Info("ignored", "k", "v")
	l.Sync()
}

func TestIsProduction(t *testing.T) {
	assert.True(t, IsProduction("prod"))
	assert.True(t, IsProduction(" Production "))
	assert.False(t, IsProduction("dev"))
	assert.False(t, IsProduction(""))
}

func TestNewAtLevel_FiltersBelowLevel(t *testing.T) {
	l, err := NewAtLevel("dev", zapcore.WarnLevel)
	require.NoError(t, err)
	assert.False(t, l.SugaredLogger.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.SugaredLogger.Desugar().Core().Enabled(zapcore.WarnLevel))
}
