package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("gig-desk-server")
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := logEntry(t, &buf)
	assert.Equal(t, "gig-desk-server", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("parent-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	require.NotNil(t, child)
	assert.NotSame(t, parent, child)

	// context fields carry over to the child
	child.Logger = child.Output(&buf)
	child.Info().Msg("child message")

	assert.Equal(t, "parent-role", logEntry(t, &buf)["role"])
}

func TestFromContext(t *testing.T) {
	t.Run("never nil", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})

	t.Run("returns the attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("trace_id", "abc-123").Logger()
		ctx := zl.WithContext(context.Background())

		l := FromContext(ctx)
		require.NotNil(t, l)
		l.Info().Msg("from context")

		assert.Equal(t, "abc-123", logEntry(t, &buf)["trace_id"])
	})
}

func TestFromRequest(t *testing.T) {
	t.Run("never nil", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		require.NotNil(t, FromRequest(req))
	})

	t.Run("returns the attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("trace_id", "req-456").Logger()

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req = req.WithContext(zl.WithContext(req.Context()))

		l := FromRequest(req)
		require.NotNil(t, l)
		l.Info().Msg("from request")

		assert.Equal(t, "req-456", logEntry(t, &buf)["trace_id"])
	})
}
