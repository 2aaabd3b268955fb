package mocks

import "context"

// Embedder is a mock implementation of ports.Embedder.
type Embedder struct {
	// Vector is returned for every embedded text.
	Vector []float32
	Err    error
}

// Embed returns the configured vector or error.
func (m *Embedder) Embed(_ context.Context, _ string) ([]float32, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Vector, nil
}

// EmbedBatch returns the configured vector once per input text.
func (m *Embedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = m.Vector
	}
	return out, nil
}
