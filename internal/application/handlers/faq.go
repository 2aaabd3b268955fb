package handlers

import (
	"context"

	"github.com/ersonp/datask-core/internal/domain/entities"
	"github.com/ersonp/datask-core/internal/domain/services"
)

// FAQHandler handles FAQ document indexing and retrieval.
type FAQHandler struct {
	faq *services.FAQService
}

// NewFAQHandler creates a new FAQ handler.
func NewFAQHandler(faq *services.FAQService) *FAQHandler {
	return &FAQHandler{faq: faq}
}

// Upload indexes the documents and returns how many were stored.
func (h *FAQHandler) Upload(ctx context.Context, docs []entities.FAQDocument) (int, error) {
	if err := h.faq.Upload(ctx, docs); err != nil {
		return 0, err
	}
	return len(docs), nil
}

// Search returns the FAQ snippets most relevant to the query.
func (h *FAQHandler) Search(ctx context.Context, query string, limit int) ([]entities.FAQDocument, error) {
	return h.faq.Search(ctx, query, limit)
}
