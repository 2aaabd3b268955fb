package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersonp/datask-core/internal/application/handlers"
)

func newSeatmapCmd() *cobra.Command {
	var (
		showNames bool
		columns   int
	)

	cmd := &cobra.Command{
		Use:   "seatmap",
		Short: "Show which seats are free or occupied right now",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeatmap(cmd, columns, showNames)
		},
	}

	cmd.Flags().BoolVarP(&showNames, "names", "n", false, "Show occupant names on occupied seats")
	cmd.Flags().IntVarP(&columns, "columns", "c", 0, "Seats per row (0 for default)")

	return cmd
}

func runSeatmap(cmd *cobra.Command, columns int, showNames bool) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		view, err := d.Seatmap.Handle(ctx, time.Now(), columns, showNames)
		if err != nil {
			return err
		}
		printSeatmap(view)
		return nil
	})
}

// printSeatmap renders the grid one row per line. Occupied seats show as
// [A-01] and free seats as  A-01 ; names follow in parentheses.
func printSeatmap(view *handlers.SeatmapView) {
	if len(view.Rows) == 0 {
		fmt.Println("(no seats)")
		return
	}

	occupied := 0
	total := 0
	for _, row := range view.Rows {
		for _, cell := range row {
			total++
			if cell.Occupied {
				occupied++
				if cell.Occupant != "" {
					fmt.Printf("[%s](%s) ", cell.Label, cell.Occupant)
				} else {
					fmt.Printf("[%s] ", cell.Label)
				}
			} else {
				fmt.Printf(" %s  ", cell.Label)
			}
		}
		fmt.Println()
	}
	fmt.Printf("\n%d/%d seats occupied as of %s\n", occupied, total, view.AsOf.Format("2006-01-02 15:04"))
}
