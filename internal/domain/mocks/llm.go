// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/ersonp/datask-core/internal/domain/entities"
	"github.com/ersonp/datask-core/internal/domain/ports"
)

// LLMClient is a mock implementation of ports.LLMClient.
type LLMClient struct {
	// Decision and Err configure the Classify return values.
	Decision *ports.Decision
	Err      error

	// Questions records every question passed to Classify.
	Questions []string
}

// Classify returns the configured decision or error.
func (m *LLMClient) Classify(_ context.Context, question string, _ entities.Catalog) (*ports.Decision, error) {
	m.Questions = append(m.Questions, question)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Decision, nil
}
