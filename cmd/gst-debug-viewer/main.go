package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/app"
)

// Version and BuildTime are set with -ldflags at release time.
var (
	Version   = "0.1.0"
	BuildTime = ""
)

var errNotTerminal = errors.New("stdout is not a terminal; use the find subcommand for scripted searches")

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "gst-debug-viewer: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	rootCmd := &cobra.Command{
		Use:   "gst-debug-viewer [FILE]",
		Short: "Browse and search GStreamer debug logs",
		Long: `Browse and search GStreamer debug logs in the terminal.

Searching runs in small batches between key presses, so the viewer stays
responsive on logs with millions of lines.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNotTerminal
			}
			if len(args) == 1 {
				opts.Path = args[0]
			}
			return app.Run(cmd.Context(), opts)
		},
	}

	findCmd := &cobra.Command{
		Use:   "find FILE QUERY",
		Short: "Print the lines of FILE that contain QUERY",
		Long: `Run the viewer's search engine without a terminal. Matching lines are
printed as LINE:TEXT with lines numbered from 1.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			_, err := app.Find(cmd.Context(), opts, args[1], cmd.OutOrStdout())
			return err
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number and exit",
		Run: func(cmd *cobra.Command, args []string) {
			if BuildTime != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s+%s\n", Version, BuildTime)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s+dev\n", Version)
			}
		},
	}

	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(versionCmd)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "override config path (default ~/.config/gst-debug-viewer/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "override state file path (default ~/.config/gst-debug-viewer/state.toml)")
	flags.StringVarP(&opts.LogLevel, "log-level", "l", "", "enable logging: off, debug, info, warning, error, critical or 0-5")
	flags.IntVar(&opts.TailLines, "tail", 0, "only load the last N lines of the file")

	return rootCmd
}
