package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusLoggerAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := newLogrusLogger(&buf, "debug", "json")

	ctx := WithRequestID(context.Background(), "req-123")
	log.Info(ctx, "generated script", map[string]interface{}{"language": "python"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "generated script", entry["msg"])
	assert.Equal(t, "req-123", entry[RequestIDField])
	assert.Equal(t, "python", entry["language"])
}

func TestLogrusLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := newLogrusLogger(&buf, "warn", "json")

	log.Info(context.Background(), "hidden", nil)
	assert.Zero(t, buf.Len())

	log.Warn(context.Background(), "shown", nil)
	assert.Contains(t, buf.String(), "shown")
}

func TestLogrusLoggerInvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := newLogrusLogger(&buf, "loud", "text")

	log.Debug(context.Background(), "hidden", nil)
	assert.Zero(t, buf.Len())

	log.Info(context.Background(), "shown", nil)
	assert.Contains(t, buf.String(), "shown")
}

func TestTestLoggerSharesEntriesWithChildren(t *testing.T) {
	log := NewTestLogger()
	child := log.WithField("component", "scriptgen")

	child.Warn(context.Background(), "fallback used", map[string]interface{}{"reason": "timeout"})

	entries := log.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "warn", entries[0].Level)
	assert.Equal(t, "scriptgen", entries[0].Fields["component"])
	assert.Equal(t, "timeout", entries[0].Fields["reason"])
	assert.True(t, log.HasMessage("warn", "fallback used"))

	log.Reset()
	assert.Empty(t, log.Entries())
}

func TestRequestIDFromContext(t *testing.T) {
	_, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)

	id, ok := RequestIDFromContext(WithRequestID(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
}
