// Package config loads the viewer's TOML configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/gst-debug-viewer/config.toml
//  3. If the file doesn't exist, use defaults
//  4. If the file exists but fields are missing, use defaults for them
//
// # TOML Format
//
//	log_level   = "warning"   # off, debug, info, warning, error, critical or 0..5
//	log_file    = "~/.local/state/gst-debug-viewer/viewer.log"
//	yield_batch = 1000        # lines scanned before the UI gets control back
//	match_mode  = "exact"     # exact or fuzzy
//
// Tilde expansion is performed on log_file. An explicitly empty log_level
// disables logging.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files, TOML
// parse errors and values rejected by Config.Validate. A missing file is not
// an error.
package config
