package mocks

import (
	"context"

	"github.com/ersonp/datask-core/internal/domain/entities"
)

// FAQIndex is an in-memory mock implementation of ports.FAQIndex.
type FAQIndex struct {
	// Docs accumulates upserted documents and seeds search results.
	Docs []entities.FAQDocument
	Err  error
}

// EnsureCollection is a no-op for the in-memory mock.
func (m *FAQIndex) EnsureCollection(_ context.Context, _ uint64) error {
	return m.Err
}

// Upsert appends the documents.
func (m *FAQIndex) Upsert(_ context.Context, docs []entities.FAQDocument) error {
	if m.Err != nil {
		return m.Err
	}
	m.Docs = append(m.Docs, docs...)
	return nil
}

// Search returns up to limit stored documents.
func (m *FAQIndex) Search(_ context.Context, _ []float32, limit int) ([]entities.FAQDocument, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if limit > len(m.Docs) {
		limit = len(m.Docs)
	}
	return m.Docs[:limit], nil
}

// Close is a no-op for the in-memory mock.
func (m *FAQIndex) Close() error {
	return nil
}
