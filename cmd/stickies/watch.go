package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	lifecycleadapter "github.com/aretw0/stickies/pkg/adapters/lifecycle"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print board changes as they happen",
	Long: `Watch follows the board and prints every change, including edits made
by other processes to a file-backed board. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s := openBoard(ctx)
		defer s.Close()

		if err := s.WatchStorage(ctx); err != nil {
			slog.Warn("external changes will not be followed", "error", err)
		}

		source := lifecycleadapter.NewSource(s.Board)
		if err := source.Start(ctx); err != nil {
			fatal("Error starting watch", err)
		}

		fmt.Fprintf(os.Stderr, "Watching %d notes...\n", s.Len())
		for e := range source.Events() {
			fmt.Printf("%s %s (%d notes)\n", time.Now().Format(time.TimeOnly), e, s.Len())
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
