package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ersonp/datask-core/internal/domain/entities"
	"github.com/ersonp/datask-core/internal/domain/ports"
)

// Router classifies a free-text question into one of the five terminal
// outcomes. Each question is one self-contained request; the router keeps
// no state across calls and never retries a failed collaborator.
type Router struct {
	llm      ports.LLMClient
	guard    *Guard
	resolver *Resolver
	catalog  entities.Catalog
}

// NewRouter creates a new intent router.
func NewRouter(llm ports.LLMClient, guard *Guard, resolver *Resolver, catalog entities.Catalog) *Router {
	return &Router{
		llm:      llm,
		guard:    guard,
		resolver: resolver,
		catalog:  catalog,
	}
}

// Route runs a single classification pass over the question. Every
// failure folds into an error outcome; generated statement text is only
// ever returned after passing the guard.
func (r *Router) Route(ctx context.Context, question string) *entities.Outcome {
	if strings.TrimSpace(question) == "" {
		return entities.ErrorOutcome(entities.ErrEmptyQuestion.Error())
	}

	decision, err := r.llm.Classify(ctx, question, r.catalog)
	if err != nil {
		return entities.ErrorOutcome("classifying question: " + err.Error())
	}

	switch decision.Kind {
	case ports.DecisionSQL:
		accepted, err := r.guard.Validate(decision.SQL)
		if err != nil {
			return entities.ErrorOutcome(err.Error())
		}
		return entities.SQLOutcome(accepted)

	case ports.DecisionChart:
		if decision.EmpCode != "" {
			return entities.ChartOutcome(decision.EmpCode, decision.EmpName)
		}
		resolved, err := r.resolver.Resolve(ctx, decision.EmpName)
		if errors.Is(err, entities.ErrEmployeeNotFound) {
			return entities.ErrorOutcome(entities.ErrEmployeeNotFound.Error())
		}
		if err != nil {
			return entities.ErrorOutcome("resolving employee: " + err.Error())
		}
		return entities.ChartOutcome(resolved.Code, resolved.Name)

	case ports.DecisionSeatmap:
		return entities.SeatmapOutcome(decision.ShowNames)

	case ports.DecisionChat:
		return entities.ChatOutcome(decision.Text)

	default:
		return entities.ErrorOutcome(fmt.Sprintf("unusable decision kind %q", decision.Kind))
	}
}
