package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ersonp/datask-core/internal/application/handlers"
	"github.com/ersonp/datask-core/internal/domain/entities"
	"github.com/ersonp/datask-core/internal/domain/services"
	embedder "github.com/ersonp/datask-core/internal/infrastructure/embedder/openai"
	"github.com/ersonp/datask-core/internal/infrastructure/faqindex/qdrant"
)

func newFAQCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "faq",
		Short: "Manage and search the office FAQ index",
	}

	cmd.AddCommand(newFAQUploadCmd(), newFAQSearchCmd())
	return cmd
}

func newFAQUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>...",
		Short: "Embed text files and store them in the FAQ index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFAQUpload(cmd, args)
		},
	}
}

func runFAQUpload(cmd *cobra.Command, paths []string) error {
	ctx := cmd.Context()

	docs := make([]entities.FAQDocument, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		name := filepath.Base(path)
		docs = append(docs, entities.FAQDocument{
			ID:      uuid.New().String(),
			Title:   strings.TrimSuffix(name, filepath.Ext(name)),
			Content: string(content),
			Source:  path,
		})
	}

	return withFAQ(func(faq *handlers.FAQHandler, index *qdrant.Repository) error {
		if err := index.EnsureCollection(ctx, embedder.VectorSize); err != nil {
			return fmt.Errorf("ensuring collection: %w", err)
		}

		count, err := faq.Upload(ctx, docs)
		if err != nil {
			return err
		}
		fmt.Printf("Indexed %d document(s)\n", count)
		return nil
	})
}

func newFAQSearchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the FAQ index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFAQSearch(cmd, args[0], limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", services.DefaultFAQLimit, "Maximum number of results")

	return cmd
}

func runFAQSearch(cmd *cobra.Command, query string, limit int) error {
	ctx := cmd.Context()

	return withFAQ(func(faq *handlers.FAQHandler, _ *qdrant.Repository) error {
		docs, err := faq.Search(ctx, query, limit)
		if err != nil {
			return err
		}

		if len(docs) == 0 {
			fmt.Println("No matches found.")
			return nil
		}

		for i, doc := range docs {
			fmt.Printf("%d. %s (score %.2f)\n", i+1, doc.Title, doc.Score)
			fmt.Printf("   %s\n\n", strings.TrimSpace(doc.Content))
		}
		return nil
	})
}
