package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/datask-core/internal/infrastructure/storage/sqlite"
)

func newSeedCmd() *cobra.Command {
	var logs int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the local database with demo seating data",
		Long:  "Inserts demo seats, employees, and usage logs. Only supported with the sqlite driver.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, logs)
		},
	}

	cmd.Flags().IntVar(&logs, "logs", DefaultSeedLogs, "Number of closed usage intervals to generate")

	return cmd
}

func runSeed(cmd *cobra.Command, logs int) error {
	ctx := cmd.Context()

	return withInternalDeps(ctx, func(d *internalDeps) error {
		repo, ok := d.db.(*sqlite.Repository)
		if !ok {
			return fmt.Errorf("seed only supports the sqlite driver (configured: %s)", d.Config.Storage.Driver)
		}

		if err := repo.Seed(ctx, logs); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}

		fmt.Printf("Seeded %s with demo data (%d usage logs)\n", repo.Path(), logs)
		return nil
	})
}
