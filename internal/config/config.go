package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/search"
)

// Config holds the viewer settings read from config.toml.
type Config struct {
	LogLevel   string
	LogFile    string
	YieldBatch int
	MatchMode  string
}

const (
	defaultConfigPath = "~/.config/gst-debug-viewer/config.toml"
	defaultLogFile    = "~/.local/state/gst-debug-viewer/viewer.log"
	defaultLogLevel   = "warning"
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		LogLevel:   defaultLogLevel,
		LogFile:    mustExpand(defaultLogFile),
		YieldBatch: search.DefaultBatch,
		MatchMode:  search.MatchModeExact,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogLevel   *string `toml:"log_level"`
		LogFile    string  `toml:"log_file"`
		YieldBatch *int    `toml:"yield_batch"`
		MatchMode  string  `toml:"match_mode"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.LogLevel != nil {
		cfg.LogLevel = strings.TrimSpace(*raw.LogLevel)
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if raw.YieldBatch != nil {
		cfg.YieldBatch = *raw.YieldBatch
	}
	if mode := strings.ToLower(strings.TrimSpace(raw.MatchMode)); mode != "" {
		cfg.MatchMode = mode
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the search engine cannot run with.
func (c Config) Validate() error {
	if c.YieldBatch <= 0 {
		return fmt.Errorf("invalid config: yield_batch must be positive, got %d", c.YieldBatch)
	}
	switch c.MatchMode {
	case search.MatchModeExact, search.MatchModeFuzzy:
	default:
		return fmt.Errorf("invalid config: match_mode %q (want %q or %q)", c.MatchMode, search.MatchModeExact, search.MatchModeFuzzy)
	}
	return nil
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}
