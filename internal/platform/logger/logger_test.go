package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/perlow/catalog-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		debugEnabled bool
		warnEnabled  bool
	}{
		{name: "debug_level", logLevel: "debug", debugEnabled: true, warnEnabled: true},
		{name: "warn_level", logLevel: "warn", debugEnabled: false, warnEnabled: true},
		{name: "error_level", logLevel: "error", debugEnabled: false, warnEnabled: false},
		{name: "unknown_level_falls_back_to_info", logLevel: "trace", debugEnabled: false, warnEnabled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := Setup(config.ServerConfig{Port: 8080, LogLevel: tt.logLevel})
			require.NotNil(t, log)

			ctx := context.Background()
			assert.Equal(t, tt.debugEnabled, log.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.warnEnabled, log.Enabled(ctx, slog.LevelWarn))
		})
	}
}
