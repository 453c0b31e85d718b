package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLoggerWritesFields(t *testing.T) {
	log, err := NewLogger(&Config{Level: InfoLevel, Format: "json", AppName: "carbooking"})
	require.NoError(t, err)

	var buf bytes.Buffer
	log.SetOutput(&buf)

	log.WithField("booking_reference", "BK-123456").WithError(errors.New("smtp down")).Warn("notification failed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "notification failed", entry["message"])
	assert.Equal(t, "BK-123456", entry["booking_reference"])
	assert.Equal(t, "smtp down", entry["error"])
	assert.Equal(t, "carbooking", entry["app"])
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	parent := NewNop()
	child := parent.WithField("a", 1)

	assert.Empty(t, parent.fields)
	assert.Equal(t, 1, child.fields["a"])
}

func TestTextFormatterSortsFields(t *testing.T) {
	log, err := NewLogger(&Config{Level: DebugLevel, Format: "text"})
	require.NoError(t, err)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.WithFields(map[string]interface{}{"b": 2, "a": 1}).Info("hello")

	line := buf.String()
	assert.Contains(t, line, "[INFO] hello a=1 b=2")
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestWithContextExtractsRequestID(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	log := NewNop().WithContext(ctx)
	assert.Equal(t, "req-1", log.fields["request_id"])
}
