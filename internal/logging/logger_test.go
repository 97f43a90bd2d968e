package logging_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-tuple-utils/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":       zerolog.InfoLevel,
		"error":  zerolog.ErrorLevel,
		"warn":   zerolog.WarnLevel,
		"INFO":   zerolog.InfoLevel,
		"debug":  zerolog.DebugLevel,
		" trace": zerolog.TraceLevel,
		"no":     zerolog.Disabled,
	}
	for name, want := range tests {
		got, err := logging.ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := logging.ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv(logging.EnvLogLevel, "debug")
	assert.Equal(t, zerolog.DebugLevel, logging.LevelFromEnv())

	t.Setenv(logging.EnvLogLevel, "bogus")
	assert.Equal(t, zerolog.InfoLevel, logging.LevelFromEnv())
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, zerolog.WarnLevel)

	log.Info().Msg("hidden")
	log.Warn().Str("k", "v").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "k=v")
}
