package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/tasklist-api/internal/config"
	"github.com/phrazzld/tasklist-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		wantDebug bool
	}{
		{"debug level enables debug", "debug", true},
		{"info level disables debug", "info", false},
		{"warn level disables debug", "warn", false},
		{"error level disables debug", "error", false},
		{"case insensitive", "DEBUG", true},
		{"invalid level falls back to info", "verbose", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.Setup(config.ServerConfig{Port: 8080, LogLevel: tt.logLevel})

			require.NoError(t, err)
			require.NotNil(t, log)
			assert.Equal(t, tt.wantDebug, log.Enabled(context.Background(), slog.LevelDebug))
		})
	}
}

func TestSetupSetsDefaultLogger(t *testing.T) {
	log, err := logger.Setup(config.ServerConfig{Port: 8080, LogLevel: "info"})

	require.NoError(t, err)
	assert.Equal(t, log, slog.Default())
}

func TestContextCarriage(t *testing.T) {
	t.Run("FromContext returns stored logger", func(t *testing.T) {
		stored := slog.Default().With("trace_id", "abc")
		ctx := logger.WithLogger(context.Background(), stored)

		assert.Equal(t, stored, logger.FromContext(ctx))
	})

	t.Run("FromContext falls back to default", func(t *testing.T) {
		assert.Equal(t, slog.Default(), logger.FromContext(context.Background()))
	})

	t.Run("FromContextOrDefault prefers context logger", func(t *testing.T) {
		stored := slog.Default().With("trace_id", "abc")
		fallback := slog.Default().With("component", "test")
		ctx := logger.WithLogger(context.Background(), stored)

		assert.Equal(t, stored, logger.FromContextOrDefault(ctx, fallback))
	})

	t.Run("FromContextOrDefault falls back to provided logger", func(t *testing.T) {
		fallback := slog.Default().With("component", "test")

		assert.Equal(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
	})
}
