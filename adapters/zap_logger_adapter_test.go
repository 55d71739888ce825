package adapters

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerAdapter(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	var logger LoggerAdapter = NewZapLoggerAdapter(zap.New(core))

	logger.Debug("dropped %d", 1)
	logger.Info("info %d", 2)
	logger.Warn("warn %s", "x")
	logger.Error("error")

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.Equal(t, "info 2", entries[0].Message)
	require.Equal(t, "guard", entries[0].LoggerName)

	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
	require.Equal(t, "warn x", entries[1].Message)

	require.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	require.Equal(t, "error", entries[2].Message)
}
