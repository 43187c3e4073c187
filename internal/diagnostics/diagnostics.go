// Package diagnostics is the stderr logging surface the address parsers use
// to report malformed input alongside the error value they return. It is
// not part of bitwire's public API.
package diagnostics

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	EnvLogLevel   = "BITWIRE_LOG_LEVEL"
	EnvLogNoColor = "BITWIRE_LOG_NOCOLOR"
	EnvLogBypass  = "BITWIRE_LOG_BYPASS"
)

var (
	once   sync.Once
	logger zerolog.Logger
	bypass bool
)

func configure() {
	once.Do(func() {
		level := zerolog.WarnLevel
		if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
			level = lvl
		}
		noColor := false
		if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
			noColor = v
		}
		if v, ok := parseBool(os.Getenv(EnvLogBypass)); ok {
			bypass = v
		}
		output := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			NoColor:    noColor,
		}
		logger = zerolog.New(output).Level(level).With().Str("pkg", "bitwire").Logger()
	})
}

// Warnf reports a recoverable parse failure, preserving the offending
// input verbatim so the caller can see exactly what was rejected.
func Warnf(format string, args ...any) {
	configure()
	if bypass {
		return
	}
	logger.Warn().Msgf(format, args...)
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.WarnLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.WarnLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
