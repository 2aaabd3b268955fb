package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/datask-core/internal/application/handlers"
)

func newChartCmd() *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "chart [name]",
		Short: "Show an employee's monthly seat usage as a bar chart",
		Long:  "Resolves the employee by code or name fragment and prints interval counts per month.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return runChart(cmd, code, name)
		},
	}

	cmd.Flags().StringVarP(&code, "code", "c", "", "Employee code, e.g. E10001")

	return cmd
}

func runChart(cmd *cobra.Command, code, name string) error {
	ctx := cmd.Context()

	if code == "" && name == "" {
		return fmt.Errorf("provide an employee name or --code")
	}

	return withDeps(ctx, func(d *Deps) error {
		usage, err := d.Usage.MonthlyByEmployee(ctx, code, name)
		if err != nil {
			return err
		}
		printChart(usage)
		return nil
	})
}

// printChart renders one bar per month, scaled to DefaultChartBar columns.
func printChart(usage *handlers.EmployeeUsage) {
	header := usage.Code
	if usage.Name != "" {
		header = fmt.Sprintf("%s (%s)", usage.Name, usage.Code)
	}
	fmt.Printf("Seat usage for %s\n\n", header)

	if len(usage.Months) == 0 {
		fmt.Println("(no usage recorded)")
		return
	}

	maxCount := 0
	for _, m := range usage.Months {
		if m.Count > maxCount {
			maxCount = m.Count
		}
	}

	for _, m := range usage.Months {
		width := m.Count * DefaultChartBar / maxCount
		if width == 0 && m.Count > 0 {
			width = 1
		}
		fmt.Printf("%s  %s %d\n", m.Month, strings.Repeat("█", width), m.Count)
	}
}
