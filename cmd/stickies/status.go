package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the internal state of the board and its storage",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		s := openBoard(ctx)
		defer s.Close()

		out := map[string]any{
			s.ComponentType(): s.State(),
		}
		if comp, ok := s.Repository.(introspection.Component); ok {
			if intro, ok := s.Repository.(introspection.Introspectable); ok {
				out[comp.ComponentType()] = intro.State()
			}
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(out); err != nil {
			fatal("Error encoding JSON", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
