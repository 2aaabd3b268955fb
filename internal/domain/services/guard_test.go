package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/datask-core/internal/domain/entities"
)

func TestGuardValidate_Accepts(t *testing.T) {
	guard := NewGuard(entities.DefaultCatalog())

	tests := []struct {
		name string
		stmt string
	}{
		{
			name: "plain select",
			stmt: "SELECT Label FROM Seat",
		},
		{
			name: "lowercase select",
			stmt: "select * from employee",
		},
		{
			name: "leading whitespace",
			stmt: "   SELECT Name FROM Employee",
		},
		{
			name: "join over two allowed tables",
			stmt: "SELECT S.Label FROM SeatLog L JOIN Seat S ON S.SeatId = L.SeatId",
		},
		{
			name: "schema-qualified table",
			stmt: "SELECT Label FROM dbo.Seat",
		},
		{
			name: "aggregate over the log",
			stmt: "SELECT EmpCode, COUNT(*) FROM SeatLog GROUP BY EmpCode ORDER BY COUNT(*) DESC",
		},
		{
			name: "comma-joined allowed tables with aliases",
			stmt: "SELECT S.Label, L.CheckIn FROM Seat S, SeatLog L WHERE L.SeatId = S.SeatId",
		},
		{
			name: "subquery over an allowed table",
			stmt: "SELECT * FROM Employee WHERE EmpCode IN (SELECT EmpCode FROM SeatLog)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accepted, err := guard.Validate(tt.stmt)
			require.NoError(t, err)
			// Accepted text is the input unchanged modulo outer whitespace.
			assert.Equal(t, strings.TrimSpace(tt.stmt), accepted)
		})
	}
}

func TestGuardValidate_Rejects(t *testing.T) {
	guard := NewGuard(entities.DefaultCatalog())

	tests := []struct {
		name   string
		stmt   string
		reason string
	}{
		{
			name:   "empty string",
			stmt:   "",
			reason: "empty statement",
		},
		{
			name:   "whitespace only",
			stmt:   "   \t\n",
			reason: "empty statement",
		},
		{
			name:   "chained statements",
			stmt:   "SELECT * FROM Seat; DROP TABLE Seat",
			reason: "statement separators",
		},
		{
			name:   "trailing separator",
			stmt:   "SELECT * FROM Seat;",
			reason: "statement separators",
		},
		{
			name:   "insert",
			stmt:   "INSERT INTO Seat (Label) VALUES ('A-99')",
			reason: "only SELECT",
		},
		{
			name:   "lowercase update",
			stmt:   "update Employee set Name = 'x'",
			reason: "only SELECT",
		},
		{
			name:   "mutating verb behind a select prefix",
			stmt:   "SELECT * FROM Seat WHERE Label IN (DELETE FROM SeatLog)",
			reason: "mutating keyword DELETE",
		},
		{
			name:   "mixed-case drop mid-statement",
			stmt:   "SELECT 1 UNION ALL SELECT 2 -- DrOp TABLE Seat",
			reason: "mutating keyword DROP",
		},
		{
			name:   "truncate",
			stmt:   "  TRUNCATE TABLE SeatLog",
			reason: "only SELECT",
		},
		{
			name:   "merge after select",
			stmt:   "SELECT * FROM Seat MERGE SeatLog",
			reason: "mutating keyword MERGE",
		},
		{
			name:   "unknown table",
			stmt:   "SELECT * FROM Salaries",
			reason: "not on the allow-list",
		},
		{
			name:   "unknown table in join",
			stmt:   "SELECT * FROM Seat S JOIN Payroll P ON P.SeatId = S.SeatId",
			reason: "not on the allow-list",
		},
		{
			name:   "unknown table behind a comma join",
			stmt:   "SELECT * FROM Seat, Salaries",
			reason: "not on the allow-list",
		},
		{
			name:   "unknown table last in an aliased comma list",
			stmt:   "SELECT * FROM Seat S, SeatLog L, Payroll P WHERE P.EmpCode = L.EmpCode",
			reason: "not on the allow-list",
		},
		{
			name:   "unknown table inside a subquery",
			stmt:   "SELECT * FROM Employee WHERE EmpCode IN (SELECT EmpCode FROM Salaries)",
			reason: "not on the allow-list",
		},
		{
			name:   "not a statement at all",
			stmt:   "hello there",
			reason: "only SELECT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := guard.Validate(tt.stmt)
			require.Error(t, err)

			var safetyErr *entities.SafetyError
			require.ErrorAs(t, err, &safetyErr)
			assert.Contains(t, safetyErr.Reason, tt.reason)
		})
	}
}

func TestGuardValidate_TrimsOuterWhitespaceOnly(t *testing.T) {
	guard := NewGuard(entities.DefaultCatalog())

	accepted, err := guard.Validate("  SELECT Label,  Area FROM Seat  ")
	require.NoError(t, err)
	assert.Equal(t, "SELECT Label,  Area FROM Seat", accepted)
}
