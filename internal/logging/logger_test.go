package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_DefaultsToNop(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	require.False(t, l.Core().Enabled(zap.DebugLevel))
}

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	Logger().Debug("records read", zap.Int("records", 3))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "records read", entry.Message)
	require.Equal(t, int64(3), entry.ContextMap()["records"])
}

func TestSetLogger_NilRestoresNop(t *testing.T) {
	SetLogger(nil)
	require.False(t, Logger().Core().Enabled(zap.ErrorLevel))
}

func TestNewDebug(t *testing.T) {
	l, err := NewDebug()
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zap.DebugLevel))
}
