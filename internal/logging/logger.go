// Package logging builds the zerolog logger used by the command-line tools.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// EnvLogLevel is the name of the environment variable that selects the
// default logging level.
const EnvLogLevel = "GLOG"

const defaultLevel = zerolog.InfoLevel

// ParseLevel maps a level name to a zerolog level. The empty string selects
// the default (info); "no" disables logging.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return defaultLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "trace":
		return zerolog.TraceLevel, nil
	case "no":
		return zerolog.Disabled, nil
	}
	return zerolog.NoLevel, fmt.Errorf("logging: unknown level %q", name)
}

// LevelFromEnv returns the level named by $GLOG, falling back to the default
// when it is unset or unrecognised.
func LevelFromEnv() zerolog.Level {
	level, err := ParseLevel(os.Getenv(EnvLogLevel))
	if err != nil {
		return defaultLevel
	}
	return level
}

// New returns a human-readable logger writing to out at the given level.
func New(out io.Writer, level zerolog.Level) zerolog.Logger {
	w := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
