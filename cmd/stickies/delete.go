package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note from the board",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		s := openBoard(ctx)
		defer s.Close()

		lookup(s, args[0])
		if err := s.Delete(ctx, args[0]); err != nil {
			fatal("Error deleting note", err)
		}
		fmt.Printf("Note deleted: %s\n", args[0])
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every note on the board",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		s := openBoard(ctx)
		defer s.Close()

		count := s.Len()
		if err := s.DeleteAll(ctx); err != nil {
			fatal("Error clearing board", err)
		}
		fmt.Printf("%d notes deleted\n", count)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd, clearCmd)
}
