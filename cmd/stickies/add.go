package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/stickies/pkg/core"
)

var (
	addX     float64
	addY     float64
	addColor string
)

var addCmd = &cobra.Command{
	Use:   "add [content]",
	Short: "Add a note on top of the board",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		color, err := core.ParseColor(addColor)
		if err != nil {
			fatal("Error", err)
		}

		ctx := context.Background()
		s := openBoard(ctx)
		defer s.Close()

		n, err := s.Create(ctx, strings.Join(args, " "), core.Position{X: addX, Y: addY}, color)
		if err != nil {
			fatal("Error saving note", err)
		}
		fmt.Println(n.ID)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().Float64Var(&addX, "x", 0, "Horizontal position")
	addCmd.Flags().Float64Var(&addY, "y", 0, "Vertical position")
	addCmd.Flags().StringVarP(&addColor, "color", "c", "", "Note color (yellow, blue, green, pink, purple)")
}
