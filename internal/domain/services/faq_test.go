package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/datask-core/internal/domain/entities"
	"github.com/ersonp/datask-core/internal/domain/mocks"
)

func TestFAQUpload(t *testing.T) {
	index := &mocks.FAQIndex{}
	svc := NewFAQService(&mocks.Embedder{Vector: []float32{0.1, 0.2}}, index)

	docs := []entities.FAQDocument{
		{ID: "1", Title: "checkin.md", Content: "How do I check in to a seat?"},
		{ID: "2", Title: "areas.md", Content: "What areas exist?"},
	}
	require.NoError(t, svc.Upload(context.Background(), docs))

	require.Len(t, index.Docs, 2)
	for _, doc := range index.Docs {
		assert.Equal(t, []float32{0.1, 0.2}, doc.Embedding)
	}
}

func TestFAQUpload_Empty(t *testing.T) {
	index := &mocks.FAQIndex{}
	svc := NewFAQService(&mocks.Embedder{}, index)

	require.NoError(t, svc.Upload(context.Background(), nil))
	assert.Empty(t, index.Docs)
}

func TestFAQUpload_EmbedderError(t *testing.T) {
	embedErr := errors.New("rate limited")
	svc := NewFAQService(&mocks.Embedder{Err: embedErr}, &mocks.FAQIndex{})

	err := svc.Upload(context.Background(), []entities.FAQDocument{{ID: "1", Content: "x"}})
	require.ErrorIs(t, err, embedErr)
}

func TestFAQSearch_DefaultLimit(t *testing.T) {
	index := &mocks.FAQIndex{
		Docs: []entities.FAQDocument{
			{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}, {ID: "5"},
		},
	}
	svc := NewFAQService(&mocks.Embedder{Vector: []float32{0.5}}, index)

	docs, err := svc.Search(context.Background(), "check in", 0)
	require.NoError(t, err)
	assert.Len(t, docs, DefaultFAQLimit)
}
