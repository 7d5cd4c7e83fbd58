// Package app is the composition root of the viewer.
//
// Run loads config.toml, sets up logging and the persisted UI state, and
// starts the Bubble Tea program. Find runs the same search engine without a
// terminal and prints matches, which is what the find subcommand uses.
//
//	Run()
//	  ├─> config.Load()     viewer settings
//	  ├─> logging.Setup()   logrus to the log file
//	  ├─> prefs.Load()      theme, find bar, last query
//	  └─> ui.Run()          TUI (blocks)
//
//	Find()
//	  ├─> logsource.Load()  whole file, or the tail
//	  ├─> search.Sentinel   on a dispatch.Loop
//	  └─> drive()           steps until done or ctx is cancelled
//
// Configuration errors are fatal. Everything after startup degrades: an
// unreadable state file falls back to defaults and a failed save is logged.
package app
