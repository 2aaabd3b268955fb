// Package mysql provides a StorageDB implementation backed by MySQL,
// for deployments where the seating log lives in a shared server.
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/ersonp/datask-core/internal/domain/entities"
	"github.com/ersonp/datask-core/internal/domain/ports"
	"github.com/ersonp/datask-core/internal/infrastructure/config"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repository implements ports.StorageDB using MySQL.
type Repository struct {
	db *sql.DB
}

// NewRepository connects to MySQL and verifies the connection.
func NewRepository(cfg config.MySQLConfig) (*Repository, error) {
	if cfg.Host == "" || cfg.Database == "" {
		return nil, errors.New("mysql host and database are required")
	}

	auth := cfg.User
	if cfg.Password != "" {
		auth = fmt.Sprintf("%s:%s", cfg.User, cfg.Password)
	}
	port := cfg.Port
	if port == "" {
		port = "3306"
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, cfg.Host, port, cfg.Database)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening mysql database: %w", err)
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging mysql database: %w", err)
	}

	return &Repository{db: db}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS Seat (
			SeatId INT AUTO_INCREMENT PRIMARY KEY,
			Label VARCHAR(32) NOT NULL UNIQUE,
			Area VARCHAR(64) NOT NULL,
			SeatType VARCHAR(32) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS Employee (
			EmpCode VARCHAR(16) PRIMARY KEY,
			Name VARCHAR(128) NOT NULL,
			Dept VARCHAR(64) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS SeatLog (
			LogId BIGINT AUTO_INCREMENT PRIMARY KEY,
			SeatId INT NOT NULL,
			EmpCode VARCHAR(16) NOT NULL,
			CheckIn DATETIME NOT NULL,
			CheckOut DATETIME NULL,
			INDEX idx_seatlog_seat (SeatId),
			INDEX idx_seatlog_emp (EmpCode),
			CONSTRAINT fk_seatlog_seat FOREIGN KEY (SeatId) REFERENCES Seat(SeatId),
			CONSTRAINT fk_seatlog_emp FOREIGN KEY (EmpCode) REFERENCES Employee(EmpCode)
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

// FindEmployeeByName looks up at most one employee under the given tier.
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
		where = `Name LIKE ?`
		arg = escaped + "%"
	case ports.MatchSubstring:
		where = `Name LIKE ?`
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
// and renders its rows to strings.
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
