package logger

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewZapLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "giving.log")

	l, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path}, nil)
	require.NoError(t, err)

	l.Info("hello", EventID("evt_1"))
	assert.Equal(t, path, l.GetFilePath())
	assert.NoError(t, l.Close())
	assert.FileExists(t, path)
}

func TestGlobalLogger_ContextHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetGlobalLogger(NewZapLoggerFromCore(core))
	defer SetGlobalLogger(nil)

	InfoCtx(context.Background(), "event processed", EventID("evt_1"), EventType("charge.succeeded"))
	WarnCtx(context.Background(), "unsupported event type")

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "event processed", entry.Message)
	assert.Equal(t, "evt_1", entry.ContextMap()["event_id"])
	assert.Equal(t, zapcore.WarnLevel, logs.All()[1].Level)
}

func TestZapEchoMiddleware_LogLevelFollowsStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mw := ZapEchoMiddleware(NewZapLoggerFromCore(core))
	e := echo.New()

	tests := []struct {
		name    string
		handler echo.HandlerFunc
		level   zapcore.Level
	}{
		{"ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, zapcore.InfoLevel},
		{"bad request", func(c echo.Context) error { return c.NoContent(http.StatusBadRequest) }, zapcore.WarnLevel},
		{"server error", func(c echo.Context) error { return errors.New("boom") }, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/webhooks/payments", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			before := logs.Len()
			assert.NoError(t, mw(tt.handler)(c))
			require.Equal(t, before+1, logs.Len())
			assert.Equal(t, tt.level, logs.All()[before].Level)
		})
	}
}
