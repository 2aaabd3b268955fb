package ports

import (
	"context"

	"github.com/ersonp/datask-core/internal/domain/entities"
)

// NameMatch selects one tier of the employee name lookup.
type NameMatch int

// Name lookup tiers, from strictest to loosest.
const (
	MatchExact NameMatch = iota
	MatchPrefix
	MatchSubstring
)

// StorageDB defines read access to the seating database. This core issues
// no mutating statements; schema creation and seeding belong to the
// adapters' administrative surface.
type StorageDB interface {
	// EnsureSchema creates the database schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the database connection.
	Close() error

	// FindEmployeeByName looks up at most one employee whose name matches
	// the fragment under the given tier. Returns nil when no row matches.
	// Ties break on the engine's natural row order.
	FindEmployeeByName(ctx context.Context, match NameMatch, fragment string) (*entities.Employee, error)

	// ListSeats returns all seats ordered ascending by label.
	ListSeats(ctx context.Context) ([]entities.Seat, error)

	// ListIntervals returns the usage log joined with seat labels and
	// employee names, ordered by check-in time.
	ListIntervals(ctx context.Context) ([]entities.UsageInterval, error)

	// IntervalsByEmployee returns the usage log rows for one employee
	// code, ordered by check-in time.
	IntervalsByEmployee(ctx context.Context, empCode string) ([]entities.UsageInterval, error)

	// RunQuery executes a read-only statement previously accepted by the
	// query guard and returns its rows. Callers must never pass
	// unvalidated text.
	RunQuery(ctx context.Context, stmt string) (*entities.ResultSet, error)
}
