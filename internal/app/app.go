package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/config"
	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/logging"
	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/prefs"
	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/ui"
)

// Options configure the viewer.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses ~/.config/gst-debug-viewer/state.toml
	LogLevel   string // overrides log_level from the config when set
	Path       string // debug log to open; empty starts with nothing loaded
	TailLines  int    // only load the last N lines; zero loads everything
}

// Run boots the TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, logger, closeLog, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	logger.WithFields(logrus.Fields{
		"logger": "main",
		"path":   opts.Path,
		"batch":  cfg.YieldBatch,
		"mode":   cfg.MatchMode,
	}).Info("starting viewer")

	return ui.Run(ui.Options{
		Context:   ctx,
		Path:      opts.Path,
		TailLines: opts.TailLines,
		Config:    cfg,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		Logger:    logger,
	})
}

// setup loads the config and opens the log file.
func setup(opts Options) (config.Config, *logrus.Logger, func() error, error) {
	noop := func() error { return nil }

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, nil, noop, fmt.Errorf("load config: %w", err)
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.LogLevel = level
	}

	logger, closeLog, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return config.Config{}, nil, noop, fmt.Errorf("init logging: %w", err)
	}
	return cfg, logger, closeLog, nil
}
