package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newUsageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show interval counts per seat",
		RunE:  runUsage,
	}
}

func runUsage(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		usage, err := d.Usage.PerSeat(ctx)
		if err != nil {
			return err
		}

		if len(usage) == 0 {
			fmt.Println("(no usage recorded)")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SEAT\tINTERVALS")
		for _, u := range usage {
			fmt.Fprintf(w, "%s\t%d\n", u.Label, u.Count)
		}
		return w.Flush()
	})
}
