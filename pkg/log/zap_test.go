package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetApplicationName(t *testing.T) {
	previous := core
	observed, logs := observer.New(zapcore.DebugLevel)
	core = observed
	t.Cleanup(func() {
		core = previous
		SetApplicationName("")
	})

	SetApplicationName("weather-page")
	Info("first")
	Infow("second", "city", "Chicago")

	entries := logs.All()
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, "weather-page", entry.ContextMap()["logName"])
	}
	assert.Equal(t, "Chicago", entries[1].ContextMap()["city"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}
