package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/datask-core/internal/infrastructure/config"
	"github.com/ersonp/datask-core/internal/infrastructure/storage/sqlite"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new datask workspace",
		Long:  "Creates a .datask directory with default configuration and an empty seating database.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	if config.Exists(cwd) {
		return fmt.Errorf("datask already initialized in %s", cwd)
	}

	if err := config.WriteDefault(cwd); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	fmt.Printf("Created %s\n", config.ConfigFilePath(cwd))

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := sqlite.NewRepository(cfg.Storage.SQLite)
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	fmt.Printf("Created %s\n", db.Path())

	fmt.Println("\nNext steps:")
	fmt.Println("  1. Set OPENAI_API_KEY in your environment")
	fmt.Println("  2. Run 'datask seed' to load demo data")
	fmt.Println("  3. Run 'datask ask \"今空いている席は?\"'")
	return nil
}
