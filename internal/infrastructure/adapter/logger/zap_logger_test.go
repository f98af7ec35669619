package logger

import (
	"testing"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerLevels(t *testing.T) {
	obsCore, logs := observer.New(zap.DebugLevel)
	log := NewZapLoggerFromCore(obsCore, core.LogLevelInfo)

	log.Debug("hidden", nil)
	log.Info("withdrawal requested", map[string]any{"userId": uint64(7)})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "withdrawal requested", entry.Message)
	assert.Equal(t, uint64(7), entry.ContextMap()["userId"])

	log.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	log.Debug("now visible", nil)
	assert.Equal(t, 2, logs.Len())

	log.SetLevel(core.LogLevelError)
	log.Warn("dropped", nil)
	log.Error("kept", map[string]any{"error": "boom"})
	assert.Equal(t, 3, logs.Len())
	assert.Equal(t, "kept", logs.All()[2].Message)
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelWarn)

	assert.Equal(t, core.LogLevelWarn, log.GetLevel())
	assert.NotPanics(t, func() {
		log.Error("ignored", map[string]any{"k": "v"})
	})
	assert.NoError(t, log.Flush())
}
