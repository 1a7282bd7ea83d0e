package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/quintans/lineards/internal/config"
	"github.com/quintans/lineards/internal/lib/ds"
	"github.com/quintans/lineards/internal/lib/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ds.DefaultCapacity, s.QueueCapacity())
	assert.Equal(t, 10, s.QueueSeed())
	assert.Equal(t, config.Range{From: 100, To: 110}, s.StackSeed())
	assert.Equal(t, render.Arrow, s.Style())
	assert.Equal(t, slog.LevelInfo, s.LogLevel())
}

func TestParse(t *testing.T) {
	s, err := config.Parse([]byte(`{
		"queueCapacity": 8,
		"queueSeed": 4,
		"stackSeed": {"from": 1, "to": 3},
		"style": "dash",
		"logLevel": "debug"
	}`))
	require.NoError(t, err)

	assert.Equal(t, 8, s.QueueCapacity())
	assert.Equal(t, 4, s.QueueSeed())
	assert.Equal(t, config.Range{From: 1, To: 3}, s.StackSeed())
	assert.Equal(t, render.Dash, s.Style())
	assert.Equal(t, slog.LevelDebug, s.LogLevel())
}

func TestParsePartial(t *testing.T) {
	s, err := config.Parse([]byte(`{"style": "python"}`))
	require.NoError(t, err)
	assert.Equal(t, render.Python, s.Style())
	assert.Equal(t, ds.DefaultCapacity, s.QueueCapacity())
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "malformed", doc: `{"queueCapacity": `},
		{name: "zero capacity", doc: `{"queueCapacity": 0}`},
		{name: "negative seed", doc: `{"queueSeed": -1}`},
		{name: "reversed range", doc: `{"stackSeed": {"from": 10, "to": 1}}`},
		{name: "unknown style", doc: `{"style": "zigzag"}`},
		{name: "unknown level", doc: `{"logLevel": "loud"}`},
		{name: "string seed", doc: `{"queueSeed": "abc"}`},
		{name: "fractional capacity", doc: `{"queueCapacity": 2.9}`},
		{name: "boolean capacity", doc: `{"queueCapacity": true}`},
		{name: "string range bound", doc: `{"stackSeed": {"from": "x"}}`},
		{name: "array range bound", doc: `{"stackSeed": {"to": []}}`},
		{name: "numeric style", doc: `{"style": 1}`},
		{name: "object level", doc: `{"logLevel": {"v": "debug"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, config.ErrInvalidSettings)
		})
	}
}

func TestParseIntegralFloat(t *testing.T) {
	s, err := config.Parse([]byte(`{"queueCapacity": 4.0}`))
	require.NoError(t, err)
	assert.Equal(t, 4, s.QueueCapacity())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"queueCapacity": 3}`), 0o600))

	s, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, s.QueueCapacity())

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
