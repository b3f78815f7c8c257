package logger_test

import (
	"net/http/httptest"
	"testing"

	"game-datastore/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		cfg   logger.Config
		level zapcore.Level
	}{
		{"Debug Console", logger.Config{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{"Info JSON", logger.Config{Level: "info", Format: "json"}, zapcore.InfoLevel},
		{"Warn", logger.Config{Level: "warn"}, zapcore.WarnLevel},
		{"Unknown Falls Back To Info", logger.Config{Level: "loud"}, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.level))
			assert.False(t, l.Core().Enabled(tt.level-1))
		})
	}
}

func TestWithRayID(t *testing.T) {
	app := fiber.New()
	var got *zap.Logger
	base := zap.NewNop()

	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("ray_id", "abc")
		got = logger.WithRayID(base, c)
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.NotSame(t, base, got)
}
