package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/stickies/pkg/query"
)

var (
	listJSON  bool
	listWhere string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the notes on the board",
	Long: `List prints every note in insertion order.

--where filters with an expression over id, content, color, x, y, width,
height, minimized, zIndex, createdAt and updatedAt, e.g.

  stickies list --where 'color == "blue" && !minimized'`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		filter, err := query.Compile(listWhere)
		if err != nil {
			fatal("Error", err)
		}

		ctx := context.Background()
		s := openBoard(ctx)
		defer s.Close()

		notes, err := filter.Apply(s.Notes())
		if err != nil {
			fatal("Error filtering notes", err)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		for _, n := range notes {
			flags := ""
			if n.Minimized {
				flags = " (minimized)"
			}
			fmt.Printf("%s %-6s z=%-3d %4.0f,%-4.0f %3.0fx%-3.0f %s%s\n",
				n.ID, n.Color, n.ZIndex, n.Position.X, n.Position.Y,
				n.Size.Width, n.Size.Height, firstLine(n.Content), flags)
		}
	},
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVarP(&listWhere, "where", "w", "", "Filter expression")
}
