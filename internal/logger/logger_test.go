package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		want  zerolog.Level
	}{
		"trace":         {input: "trace", want: zerolog.TraceLevel},
		"debug":         {input: "debug", want: zerolog.DebugLevel},
		"info":          {input: "INFO", want: zerolog.InfoLevel},
		"error":         {input: "error", want: zerolog.ErrorLevel},
		"warn":          {input: "warn", want: zerolog.WarnLevel},
		"unknown":       {input: "verbose", want: zerolog.WarnLevel},
		"empty":         {input: "", want: zerolog.WarnLevel},
		"padded string": {input: "  debug ", want: zerolog.DebugLevel},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestSetup_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := Setup("debug", "json", &buf)
	log.Debug().Str("commit", "abc1234").Msg("classified")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "abc1234", entry["commit"])
	assert.Equal(t, "classified", entry["message"])
}

func TestSetup_LevelFilters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := Setup("warn", "json", &buf)
	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetup_ConsoleFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := Setup("info", "text", &buf)
	log.Info().Msg("building changelog")
	assert.Contains(t, buf.String(), "building changelog")
}
