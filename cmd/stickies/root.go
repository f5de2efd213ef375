package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/stickies"
	"github.com/aretw0/stickies/internal/platform"
)

var (
	verbose bool
	store   string
	cfg     *platform.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stickies",
	Short: "A sticky-note board for the terminal",
	Long: `Stickies keeps a board of freeform notes with position, size, color and
stacking order. Every change is saved immediately.

The board lives in the nearest .stickies directory above the working
directory unless --store or STICKIES_STORE points elsewhere.

Environment:
` + platform.Usage(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var err error
		cfg, err = platform.LoadConfig()
		if err != nil {
			fatal("Error reading environment", err)
		}

		level, err := cfg.Level()
		if err != nil {
			fatal("Error reading environment", err)
		}
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&store, "store", "s", "", "Board location (overrides STICKIES_STORE)")
}

// openBoard opens the configured board or exits.
func openBoard(ctx context.Context) *stickies.Store {
	uri := store
	if uri == "" {
		uri = cfg.Store
	}
	if uri == "" {
		wd, err := os.Getwd()
		if err != nil {
			fatal("Error getting working directory", err)
		}
		uri, err = platform.DefaultStore(wd)
		if err != nil {
			fatal("Error locating board", err)
		}
	}

	s, err := stickies.Open(ctx, uri,
		stickies.WithKey(cfg.Key),
		stickies.WithEventBuffer(cfg.EventBuffer),
		stickies.WithLogger(slog.Default()),
	)
	if err != nil {
		fatal("Error opening board", err)
	}
	return s
}

// lookup returns the note with the given id or exits.
func lookup(s *stickies.Store, id string) stickies.Note {
	n, ok := s.Get(id)
	if !ok {
		fatal("Error", fmt.Errorf("note %s not found", id))
	}
	return n
}
