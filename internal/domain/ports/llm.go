// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/ersonp/datask-core/internal/domain/entities"
)

// DecisionKind enumerates the structured decisions the model can return.
type DecisionKind string

// Decision kinds. Exactly one is returned per question; the router trusts
// it and never runs a second classification pass.
const (
	DecisionSQL     DecisionKind = "sql"
	DecisionChart   DecisionKind = "chart"
	DecisionSeatmap DecisionKind = "seatmap"
	DecisionChat    DecisionKind = "chat"
)

// Decision is the model's single structured decision for one question.
// Only the fields belonging to Kind are meaningful.
type Decision struct {
	Kind      DecisionKind
	SQL       string // DecisionSQL: generated statement text, unvalidated
	EmpCode   string // DecisionChart: canonical employee code, may be empty
	EmpName   string // DecisionChart: display name or free-text fragment
	ShowNames bool   // DecisionSeatmap: include occupant names
	Text      string // DecisionChat: free-form reply, display only
}

// LLMClient defines the interface for the inference collaborator.
type LLMClient interface {
	// Classify converts a free-text question into a structured decision,
	// grounded on the schema catalog.
	Classify(ctx context.Context, question string, catalog entities.Catalog) (*Decision, error)
}
