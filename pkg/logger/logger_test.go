package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDFollowsLogLines(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))
	t.Cleanup(func() { Set(zap.NewNop()) })

	ctx := WithRequestID(context.Background(), "req-42")
	Warnf(ctx, "vendor %s not found", "v9")
	Infof(context.Background(), "no request")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "vendor v9 not found", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
	assert.NotContains(t, entries[1].ContextMap(), "request_id")
}

func TestRequestID(t *testing.T) {
	assert.Equal(t, "unknown", RequestID(context.Background()))
	assert.Equal(t, "abc", RequestID(WithRequestID(context.Background(), "abc")))
}

func TestInitFallsBackToInfo(t *testing.T) {
	require.NoError(t, Init("not-a-level", "production"))
	t.Cleanup(func() { Set(zap.NewNop()) })
	Sync()
}
