package services

import (
	"context"
	"fmt"

	"github.com/ersonp/datask-core/internal/domain/entities"
	"github.com/ersonp/datask-core/internal/domain/ports"
)

// DefaultFAQLimit is the default number of FAQ snippets to return.
const DefaultFAQLimit = 3

// FAQService handles FAQ document indexing and retrieval.
type FAQService struct {
	embedder ports.Embedder
	index    ports.FAQIndex
}

// NewFAQService creates a new FAQ service.
func NewFAQService(embedder ports.Embedder, index ports.FAQIndex) *FAQService {
	return &FAQService{
		embedder: embedder,
		index:    index,
	}
}

// Upload embeds the documents and stores them in the index.
func (s *FAQService) Upload(ctx context.Context, docs []entities.FAQDocument) error {
	if len(docs) == 0 {
		return nil
	}
	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Content
	}
	embeddings, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embedding documents: %w", err)
	}
	if len(embeddings) != len(docs) {
		return fmt.Errorf("embedding count mismatch: got %d for %d documents", len(embeddings), len(docs))
	}
	for i := range docs {
		docs[i].Embedding = embeddings[i]
	}
	if err := s.index.Upsert(ctx, docs); err != nil {
		return fmt.Errorf("upserting documents: %w", err)
	}
	return nil
}

// Search embeds the query and returns the most similar documents.
func (s *FAQService) Search(ctx context.Context, query string, limit int) ([]entities.FAQDocument, error) {
	if limit <= 0 {
		limit = DefaultFAQLimit
	}
	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	docs, err := s.index.Search(ctx, embedding, limit)
	if err != nil {
		return nil, fmt.Errorf("searching documents: %w", err)
	}
	return docs, nil
}
