// Package logging configures the logrus logger shared by the viewer.
//
// The terminal belongs to the UI, so log output goes to a file. Levels use
// the viewer's historical vocabulary: a name (off, none, debug, info,
// warning, error, critical) or a number from 0 (off) to 5 (critical).
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "15:04:05.000"

var numericLevels = [...]logrus.Level{
	1: logrus.DebugLevel,
	2: logrus.InfoLevel,
	3: logrus.WarnLevel,
	4: logrus.ErrorLevel,
	5: logrus.FatalLevel,
}

// ParseLevel converts a level argument. enabled is false for "off", "none",
// the empty string and 0. Numbers outside 0..5 are clamped.
func ParseLevel(arg string) (level logrus.Level, enabled bool, err error) {
	trimmed := strings.ToLower(strings.TrimSpace(arg))
	if n, convErr := strconv.Atoi(trimmed); convErr == nil {
		if n <= 0 {
			return logrus.PanicLevel, false, nil
		}
		if n > 5 {
			n = 5
		}
		return numericLevels[n], true, nil
	}
	switch trimmed {
	case "", "off", "none":
		return logrus.PanicLevel, false, nil
	case "debug":
		return logrus.DebugLevel, true, nil
	case "info":
		return logrus.InfoLevel, true, nil
	case "warning", "warn":
		return logrus.WarnLevel, true, nil
	case "error":
		return logrus.ErrorLevel, true, nil
	case "critical":
		return logrus.FatalLevel, true, nil
	default:
		return logrus.PanicLevel, false, fmt.Errorf("unknown log level %q (want debug, info, warning, error, critical)", arg)
	}
}

// New returns a logger writing to w at level. A disabled logger discards
// everything.
func New(w io.Writer, level logrus.Level, enabled bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
	})
	if !enabled {
		logger.SetOutput(io.Discard)
		logger.SetLevel(logrus.PanicLevel)
		return logger
	}
	logger.SetOutput(w)
	logger.SetLevel(level)
	return logger
}

// Setup parses levelArg and opens path for appending. The returned close
// function is never nil.
func Setup(levelArg, path string) (*logrus.Logger, func() error, error) {
	noop := func() error { return nil }

	level, enabled, err := ParseLevel(levelArg)
	if err != nil {
		return nil, noop, err
	}
	if !enabled || strings.TrimSpace(path) == "" {
		return New(io.Discard, level, false), noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, noop, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("open log file: %w", err)
	}

	logger := New(file, level, true)
	logger.WithField("logger", "main").Debugf("logging at level %s", level)
	return logger, file.Close, nil
}
