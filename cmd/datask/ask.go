package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersonp/datask-core/internal/application/handlers"
	"github.com/ersonp/datask-core/internal/domain/entities"
)

func newAskCmd() *cobra.Command {
	var showSQL bool

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a question about seats, employees, or usage",
		Long:  "Routes a plain-language question and prints the answer: query rows, a usage chart, the seat map, or a text reply.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, args[0], showSQL)
		},
	}

	cmd.Flags().BoolVar(&showSQL, "show-sql", false, "Print the generated statement above the result")

	return cmd
}

func runAsk(cmd *cobra.Command, question string, showSQL bool) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		result := d.Ask.Handle(ctx, question)
		return printAskResult(ctx, d, result, showSQL)
	})
}

func printAskResult(ctx context.Context, d *Deps, result *handlers.AskResult, showSQL bool) error {
	outcome := result.Outcome
	switch outcome.Kind {
	case entities.OutcomeSQL:
		if showSQL {
			fmt.Printf("-- %s\n", outcome.SQL)
		}
		printTable(result.Table)
		return nil

	case entities.OutcomeChart:
		usage, err := d.Usage.MonthlyByEmployee(ctx, outcome.EmpCode, outcome.EmpName)
		if err != nil {
			return err
		}
		printChart(usage)
		return nil

	case entities.OutcomeSeatmap:
		view, err := d.Seatmap.Handle(ctx, time.Now(), 0, outcome.ShowNames)
		if err != nil {
			return err
		}
		printSeatmap(view)
		return nil

	case entities.OutcomeChat:
		fmt.Println(outcome.Text)
		return nil

	case entities.OutcomeError:
		fmt.Fprintf(os.Stderr, "cannot answer: %s\n", outcome.Reason)
		return nil

	default:
		return fmt.Errorf("unexpected outcome kind %q", outcome.Kind)
	}
}

// printTable renders query rows in aligned columns, capped at MaxTableRows.
func printTable(table *entities.ResultSet) {
	if table == nil || table.Empty() {
		fmt.Println("(no rows)")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(table.Columns, "\t"))

	rows := table.Rows
	truncated := false
	if len(rows) > MaxTableRows {
		rows = rows[:MaxTableRows]
		truncated = true
	}
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()

	fmt.Printf("%d row(s)\n", len(table.Rows))
	if truncated {
		fmt.Printf("(showing first %d)\n", MaxTableRows)
	}
}
