// Package handlers orchestrates domain services for the CLI and HTTP
// front ends.
package handlers

import (
	"context"

	"github.com/ersonp/datask-core/internal/domain/entities"
	"github.com/ersonp/datask-core/internal/domain/ports"
	"github.com/ersonp/datask-core/internal/domain/services"
)

// AskHandler answers one free-text question end to end: route it, and
// when the outcome is a validated statement, execute it against storage.
type AskHandler struct {
	router *services.Router
	db     ports.StorageDB
}

// NewAskHandler creates a new ask handler.
func NewAskHandler(router *services.Router, db ports.StorageDB) *AskHandler {
	return &AskHandler{
		router: router,
		db:     db,
	}
}

// AskResult couples the routed outcome with query rows. Table is set for
// sql outcomes only.
type AskResult struct {
	Outcome *entities.Outcome
	Table   *entities.ResultSet
}

// Handle routes the question and executes an accepted statement. Only
// statement text carried by a sql outcome ever reaches storage, and that
// text has already passed the query guard. Execution failures fold into
// an error outcome and are not retried.
func (h *AskHandler) Handle(ctx context.Context, question string) *AskResult {
	outcome := h.router.Route(ctx, question)
	if outcome.Kind != entities.OutcomeSQL {
		return &AskResult{Outcome: outcome}
	}

	table, err := h.db.RunQuery(ctx, outcome.SQL)
	if err != nil {
		return &AskResult{Outcome: entities.ErrorOutcome("executing query: " + err.Error())}
	}
	return &AskResult{Outcome: outcome, Table: table}
}
