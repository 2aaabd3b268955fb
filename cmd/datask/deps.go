package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ersonp/datask-core/internal/application/handlers"
	"github.com/ersonp/datask-core/internal/domain/entities"
	"github.com/ersonp/datask-core/internal/domain/ports"
	"github.com/ersonp/datask-core/internal/domain/services"
	"github.com/ersonp/datask-core/internal/infrastructure/config"
	embedder "github.com/ersonp/datask-core/internal/infrastructure/embedder/openai"
	"github.com/ersonp/datask-core/internal/infrastructure/faqindex/qdrant"
	llm "github.com/ersonp/datask-core/internal/infrastructure/llm/openai"
	"github.com/ersonp/datask-core/internal/infrastructure/storage/mysql"
	"github.com/ersonp/datask-core/internal/infrastructure/storage/sqlite"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	Config  *config.Config
	Ask     *handlers.AskHandler
	Seatmap *handlers.SeatmapHandler
	Usage   *handlers.UsageHandler
}

// internalDeps holds all dependencies including low-level components.
type internalDeps struct {
	Deps
	db ports.StorageDB
}

// withDeps loads config and builds dependencies, then calls the provided
// function. It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	return withInternalDeps(ctx, func(d *internalDeps) error {
		return fn(&d.Deps)
	})
}

// withInternalDeps provides access to all dependencies including low-level
// components. Used by commands that need direct storage access.
func withInternalDeps(ctx context.Context, fn func(*internalDeps) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}

	llmClient, err := llm.NewClient(cfg.LLM)
	if err != nil {
		return fmt.Errorf("creating LLM client: %w", err)
	}

	catalog := entities.DefaultCatalog()
	guard := services.NewGuard(catalog)
	resolver := services.NewResolver(db)
	occupancy := services.NewOccupancyService(db)
	router := services.NewRouter(llmClient, guard, resolver, catalog)

	d := &internalDeps{
		Deps: Deps{
			Config:  cfg,
			Ask:     handlers.NewAskHandler(router, db),
			Seatmap: handlers.NewSeatmapHandler(occupancy, db),
			Usage:   handlers.NewUsageHandler(occupancy, resolver),
		},
		db: db,
	}
	return fn(d)
}

// withFAQ builds the FAQ handler and index on top of the base config.
// Cleanup of the index connection is automatic.
func withFAQ(fn func(*handlers.FAQHandler, *qdrant.Repository) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	emb, err := embedder.NewEmbedder(cfg.Embedder)
	if err != nil {
		return fmt.Errorf("creating embedder: %w", err)
	}

	index, err := qdrant.NewRepository(cfg.Qdrant)
	if err != nil {
		return fmt.Errorf("connecting to qdrant: %w", err)
	}
	defer index.Close()

	faq := handlers.NewFAQHandler(services.NewFAQService(emb, index))
	return fn(faq, index)
}

func loadConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// openStorage opens the configured seating database driver.
func openStorage(cfg *config.Config) (ports.StorageDB, error) {
	switch cfg.Storage.Driver {
	case "", "sqlite":
		db, err := sqlite.NewRepository(cfg.Storage.SQLite)
		if err != nil {
			return nil, fmt.Errorf("creating sqlite repository: %w", err)
		}
		return db, nil
	case "mysql":
		db, err := mysql.NewRepository(cfg.Storage.MySQL)
		if err != nil {
			return nil, fmt.Errorf("creating mysql repository: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q (use sqlite or mysql)", cfg.Storage.Driver)
	}
}
