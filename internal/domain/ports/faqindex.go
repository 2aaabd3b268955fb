package ports

import (
	"context"

	"github.com/ersonp/datask-core/internal/domain/entities"
)

// FAQIndex defines the interface for the FAQ vector index.
type FAQIndex interface {
	// EnsureCollection creates the index collection if it doesn't exist.
	EnsureCollection(ctx context.Context, vectorSize uint64) error

	// Upsert stores FAQ documents with their embeddings.
	Upsert(ctx context.Context, docs []entities.FAQDocument) error

	// Search returns the documents most similar to the embedding.
	Search(ctx context.Context, embedding []float32, limit int) ([]entities.FAQDocument, error)

	// Close closes the index connection.
	Close() error
}
