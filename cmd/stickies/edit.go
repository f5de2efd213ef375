package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aretw0/stickies/pkg/core"
)

var minimizeOff bool

var moveCmd = &cobra.Command{
	Use:   "move [id] [dx] [dy]",
	Short: "Move a note by an offset",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		dx, dy := parseFloat(args[1]), parseFloat(args[2])

		ctx := context.Background()
		s := openBoard(ctx)
		defer s.Close()

		lookup(s, args[0])
		if err := s.MoveBy(ctx, args[0], dx, dy); err != nil {
			fatal("Error moving note", err)
		}
		n, _ := s.Get(args[0])
		fmt.Printf("%s at %.0f,%.0f\n", n.ID, n.Position.X, n.Position.Y)
	},
}

var resizeCmd = &cobra.Command{
	Use:   "resize [id] [width] [height]",
	Short: "Set the size of a note",
	Long:  `Resize sets width and height; values below 150 are raised to 150.`,
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		size := core.Size{Width: parseFloat(args[1]), Height: parseFloat(args[2])}

		ctx := context.Background()
		s := openBoard(ctx)
		defer s.Close()

		lookup(s, args[0])
		if err := s.Update(ctx, args[0], core.SetSize(size)); err != nil {
			fatal("Error resizing note", err)
		}
		n, _ := s.Get(args[0])
		fmt.Printf("%s is %.0fx%.0f\n", n.ID, n.Size.Width, n.Size.Height)
	},
}

var colorCmd = &cobra.Command{
	Use:   "color [id] [color]",
	Short: "Change the color of a note",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		color, err := core.ParseColor(args[1])
		if err != nil {
			fatal("Error", err)
		}

		ctx := context.Background()
		s := openBoard(ctx)
		defer s.Close()

		lookup(s, args[0])
		if err := s.Update(ctx, args[0], core.SetColor(color)); err != nil {
			fatal("Error recoloring note", err)
		}
	},
}

var minimizeCmd = &cobra.Command{
	Use:   "minimize [id]",
	Short: "Collapse a note (or expand it with --off)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		s := openBoard(ctx)
		defer s.Close()

		lookup(s, args[0])
		if err := s.Update(ctx, args[0], core.SetMinimized(!minimizeOff)); err != nil {
			fatal("Error updating note", err)
		}
	},
}

var frontCmd = &cobra.Command{
	Use:   "front [id]",
	Short: "Bring a note above all others",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		s := openBoard(ctx)
		defer s.Close()

		lookup(s, args[0])
		if err := s.BringToFront(ctx, args[0]); err != nil {
			fatal("Error restacking note", err)
		}
	},
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fatal("Error", fmt.Errorf("invalid number %q", s))
	}
	return f
}

func init() {
	rootCmd.AddCommand(moveCmd, resizeCmd, colorCmd, minimizeCmd, frontCmd)
	minimizeCmd.Flags().BoolVar(&minimizeOff, "off", false, "Expand the note instead")
}
