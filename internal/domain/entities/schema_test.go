package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_TableNames(t *testing.T) {
	catalog := DefaultCatalog()
	assert.Equal(t, []string{"Seat", "Employee", "SeatLog"}, catalog.TableNames())
}

func TestCatalog_Allows(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		ref  string
		want bool
	}{
		{"Seat", true},
		{"seat", true},
		{"SEATLOG", true},
		{"dbo.Employee", true},
		{"DBO.SEATLOG", true},
		{"[Seat]", true},
		{"[dbo].[SeatLog]", true},
		{"Reservation", false},
		{"Employees", false},
		{"dbo.Users", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.Allows(tt.ref))
		})
	}
}

func TestNormalizeTableRef(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"Seat", "seat"},
		{"dbo.SeatLog", "seatlog"},
		{"[dbo].[SeatLog]", "seatlog"},
		{"`Employee`", "employee"},
		{`"Seat"`, "seat"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTableRef(tt.ref))
	}
}

func TestCatalog_PromptHint(t *testing.T) {
	hint := DefaultCatalog().PromptHint()

	assert.Contains(t, hint, "Seat, Employee, SeatLog")
	assert.Contains(t, hint, "SeatLog(LogId identifier, SeatId identifier, EmpCode identifier, CheckIn timestamp, CheckOut timestamp)")
}
