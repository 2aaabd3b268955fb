package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ersonp/datask-core/internal/domain/entities"
	"github.com/ersonp/datask-core/internal/domain/ports"
)

// matchTier is one step of the name resolution fallback chain.
type matchTier struct {
	name string
	kind ports.NameMatch
}

// resolutionTiers is the fixed evaluation order. The first tier that
// yields a row wins; later tiers are never consulted.
var resolutionTiers = []matchTier{
	{"exact", ports.MatchExact},
	{"prefix", ports.MatchPrefix},
	{"substring", ports.MatchSubstring},
}

// Resolver maps a free-text name fragment to a canonical employee code.
// It performs no writes and is idempotent for a fixed database state.
type Resolver struct {
	db ports.StorageDB
}

// NewResolver creates a new resolver over the given storage.
func NewResolver(db ports.StorageDB) *Resolver {
	return &Resolver{db: db}
}

// Resolve tries each tier in order and returns the first match. A blank
// fragment or no match at any tier yields entities.ErrEmployeeNotFound.
func (r *Resolver) Resolve(ctx context.Context, fragment string) (*entities.ResolvedEmployee, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, entities.ErrEmployeeNotFound
	}
	for _, tier := range resolutionTiers {
		emp, err := r.db.FindEmployeeByName(ctx, tier.kind, fragment)
		if err != nil {
			return nil, fmt.Errorf("looking up employee (%s match): %w", tier.name, err)
		}
		if emp != nil {
			return &entities.ResolvedEmployee{Code: emp.Code, Name: emp.Name}, nil
		}
	}
	return nil, entities.ErrEmployeeNotFound
}
