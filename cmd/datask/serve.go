package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ersonp/datask-core/internal/application/handlers"
	"github.com/ersonp/datask-core/internal/domain/services"
	"github.com/ersonp/datask-core/internal/infrastructure/config"
	embedder "github.com/ersonp/datask-core/internal/infrastructure/embedder/openai"
	"github.com/ersonp/datask-core/internal/infrastructure/faqindex/qdrant"
	"github.com/ersonp/datask-core/internal/server"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, port)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")

	return cmd
}

func runServe(cmd *cobra.Command, port string) error {
	ctx := cmd.Context()

	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	return withInternalDeps(ctx, func(d *internalDeps) error {
		log, err := newLogger(d.Config.Server.LogLevel)
		if err != nil {
			return err
		}
		defer log.Sync()

		faq, cleanup, err := buildFAQHandler(d.Config)
		if err != nil {
			log.Warn("FAQ search disabled", zap.Error(err))
		}
		if cleanup != nil {
			defer cleanup()
		}

		srv := server.New(log, d.Ask, d.Seatmap, d.Usage, faq)

		if port == "" {
			port = d.Config.Server.Port
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start(port)
		}()
		log.Info("listening", zap.String("port", port), zap.String("driver", d.Config.Storage.Driver))

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("starting server: %w", err)
			}
			return nil
		case <-ctx.Done():
			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	})
}

// buildFAQHandler wires the FAQ endpoint when the embedder is configured.
// The returned cleanup closes the index connection.
func buildFAQHandler(cfg *config.Config) (*handlers.FAQHandler, func(), error) {
	emb, err := embedder.NewEmbedder(cfg.Embedder)
	if err != nil {
		return nil, nil, err
	}

	index, err := qdrant.NewRepository(cfg.Qdrant)
	if err != nil {
		return nil, nil, err
	}

	faq := handlers.NewFAQHandler(services.NewFAQService(emb, index))
	return faq, func() { index.Close() }, nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if level != "" {
		parsed, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level %q: %w", level, err)
		}
		cfg.Level = parsed
	}
	return cfg.Build()
}
