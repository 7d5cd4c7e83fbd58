// Package prefs persists viewer UI state between runs.
// State is stored in ~/.config/gst-debug-viewer/state.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexflint/go-filemutex"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/config"
)

// Prefs holds the UI state restored at startup.
type Prefs struct {
	Theme       string `toml:"theme"`
	ShowFindBar bool   `toml:"show_find_bar"`
	LastQuery   string `toml:"last_query"`
}

const (
	defaultPrefsPath = "~/.config/gst-debug-viewer/state.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default state file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads state from path, falling back to defaults on any problem.
func Load(path string) (Prefs, error) {
	prefs := Prefs{Theme: defaultTheme}

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs, nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs, nil // Graceful degradation
	}

	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return Prefs{Theme: defaultTheme}, nil // Graceful degradation
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}

	return prefs, nil
}

// Save writes state to path, creating directories as needed. Concurrent
// viewers serialise on a lock file next to the state file.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	lock, err := filemutex.New(resolved + ".lock")
	if err != nil {
		return fmt.Errorf("open state lock: %w", err)
	}
	defer func() { _ = lock.Close() }()
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock state: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	tmp := resolved + ".tmp"
	if err := os.WriteFile(tmp, bytes, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := os.Rename(tmp, resolved); err != nil {
		return fmt.Errorf("replace state: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.ExpandPath(defaultPrefsPath)
	}
	return config.ExpandPath(path)
}
