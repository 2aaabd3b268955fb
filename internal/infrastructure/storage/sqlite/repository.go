// Package sqlite provides a StorageDB implementation backed by SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/datask-core/internal/domain/entities"
	"github.com/ersonp/datask-core/internal/domain/ports"
	"github.com/ersonp/datask-core/internal/infrastructure/config"
)

// likeEscaper escapes LIKE wildcards in user-supplied name fragments.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repository implements ports.StorageDB using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Enable foreign keys for referential integrity
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist. Table and
// column names match the catalog so generated statements run unchanged.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Seats (reference data, administered outside this service)
	CREATE TABLE IF NOT EXISTS Seat (
		SeatId INTEGER PRIMARY KEY AUTOINCREMENT,
		Label TEXT NOT NULL UNIQUE,
		Area TEXT NOT NULL,
		SeatType TEXT NOT NULL
	);

	-- Employees (reference data)
	CREATE TABLE IF NOT EXISTS Employee (
		EmpCode TEXT PRIMARY KEY,
		Name TEXT NOT NULL,
		Dept TEXT NOT NULL
	);

	-- Usage log; a NULL CheckOut marks an open interval
	CREATE TABLE IF NOT EXISTS SeatLog (
		LogId INTEGER PRIMARY KEY AUTOINCREMENT,
		SeatId INTEGER NOT NULL REFERENCES Seat(SeatId),
		EmpCode TEXT NOT NULL REFERENCES Employee(EmpCode),
		CheckIn TIMESTAMP NOT NULL,
		CheckOut TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_seatlog_seat ON SeatLog(SeatId);
	CREATE INDEX IF NOT EXISTS idx_seatlog_emp ON SeatLog(EmpCode);
	CREATE INDEX IF NOT EXISTS idx_seatlog_open ON SeatLog(CheckOut) WHERE CheckOut IS NULL;
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// FindEmployeeByName looks up at most one employee under the given tier.
// Natural row order breaks ties; nil means no match.
func (r *Repository) FindEmployeeByName(ctx context.Context, match ports.NameMatch, fragment string) (*entities.Employee, error) {
	var (
		where string
		arg   string
	)
	escaped := likeEscaper.Replace(fragment)
	switch match {
	case ports.MatchExact:
		where = `Name = ?`
		arg = fragment
	case ports.MatchPrefix:
		where = `Name LIKE ? ESCAPE '\'`
		arg = escaped + "%"
	case ports.MatchSubstring:
		where = `Name LIKE ? ESCAPE '\'`
		arg = "%" + escaped + "%"
	default:
		return nil, fmt.Errorf("unknown name match tier %d", match)
	}

	query := `SELECT EmpCode, Name, Dept FROM Employee WHERE ` + where + ` LIMIT 1`

	var emp entities.Employee
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&emp.Code, &emp.Name, &emp.Dept)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding employee: %w", err)
	}
	return &emp, nil
}

// ListSeats returns all seats ordered ascending by label.
func (r *Repository) ListSeats(ctx context.Context) ([]entities.Seat, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT SeatId, Label, Area, SeatType FROM Seat ORDER BY Label`)
	if err != nil {
		return nil, fmt.Errorf("listing seats: %w", err)
	}
	defer rows.Close()

	var seats []entities.Seat
	for rows.Next() {
		var seat entities.Seat
		if err := rows.Scan(&seat.ID, &seat.Label, &seat.Area, &seat.Type); err != nil {
			return nil, fmt.Errorf("scanning seat: %w", err)
		}
		seats = append(seats, seat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing seats: %w", err)
	}
	return seats, nil
}

// ListIntervals returns the usage log joined with seat labels and
// employee names, ordered by check-in time.
func (r *Repository) ListIntervals(ctx context.Context) ([]entities.UsageInterval, error) {
	const query = `
		SELECT L.LogId, S.Label, L.EmpCode, E.Name, L.CheckIn, L.CheckOut
		FROM SeatLog L
		JOIN Seat S ON S.SeatId = L.SeatId
		JOIN Employee E ON E.EmpCode = L.EmpCode
		ORDER BY L.CheckIn, L.LogId`
	return r.queryIntervals(ctx, query)
}

// IntervalsByEmployee returns one employee's usage log rows ordered by
// check-in time.
func (r *Repository) IntervalsByEmployee(ctx context.Context, empCode string) ([]entities.UsageInterval, error) {
	const query = `
		SELECT L.LogId, S.Label, L.EmpCode, E.Name, L.CheckIn, L.CheckOut
		FROM SeatLog L
		JOIN Seat S ON S.SeatId = L.SeatId
		JOIN Employee E ON E.EmpCode = L.EmpCode
		WHERE L.EmpCode = ?
		ORDER BY L.CheckIn, L.LogId`
	return r.queryIntervals(ctx, query, empCode)
}

func (r *Repository) queryIntervals(ctx context.Context, query string, args ...any) ([]entities.UsageInterval, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing intervals: %w", err)
	}
	defer rows.Close()

	var intervals []entities.UsageInterval
	for rows.Next() {
		var (
			iv       entities.UsageInterval
			checkOut sql.NullTime
		)
		if err := rows.Scan(&iv.ID, &iv.SeatLabel, &iv.EmpCode, &iv.EmpName, &iv.CheckIn, &checkOut); err != nil {
			return nil, fmt.Errorf("scanning interval: %w", err)
		}
		if checkOut.Valid {
			out := checkOut.Time
			iv.CheckOut = &out
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing intervals: %w", err)
	}
	return intervals, nil
}

// RunQuery executes a statement previously accepted by the query guard
// and renders its rows to strings. Unvalidated text must never get here.
func (r *Repository) RunQuery(ctx context.Context, stmt string) (*entities.ResultSet, error) {
	rows, err := r.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	result := &entities.ResultSet{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		row := make([]string, len(columns))
		for i, value := range values {
			row[i] = formatValue(value)
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	return result, nil
}

// formatValue renders one scanned cell for display.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprintf("%v", v)
	}
}
