package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/datask-core/internal/domain/entities"
	"github.com/ersonp/datask-core/internal/domain/mocks"
	"github.com/ersonp/datask-core/internal/domain/services"
)

func seatmapFixture() *mocks.StorageDB {
	open := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	closed := time.Date(2025, 5, 20, 11, 0, 0, 0, time.UTC)
	return &mocks.StorageDB{
		Seats: []entities.Seat{
			{ID: 1, Label: "A-01", Area: "North", Type: "Standard"},
			{ID: 2, Label: "A-02", Area: "North", Type: "Standard"},
			{ID: 3, Label: "A-03", Area: "South", Type: "Booth"},
			{ID: 4, Label: "A-04", Area: "South", Type: "Standard"},
			{ID: 5, Label: "A-05", Area: "South", Type: "Standard"},
		},
		Intervals: []entities.UsageInterval{
			{SeatLabel: "A-02", EmpCode: "E10001", EmpName: "田中一郎", CheckIn: open},
			{SeatLabel: "A-04", EmpCode: "E10002", EmpName: "鈴木次郎", CheckIn: open, CheckOut: &closed},
		},
	}
}

func TestSeatmapHandle(t *testing.T) {
	db := seatmapFixture()
	handler := NewSeatmapHandler(services.NewOccupancyService(db), db)

	asOf := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	view, err := handler.Handle(context.Background(), asOf, 2, false)
	require.NoError(t, err)

	// Five labels in columns of two: rows of sizes 2, 2, 1.
	require.Len(t, view.Rows, 3)
	assert.Len(t, view.Rows[0], 2)
	assert.Len(t, view.Rows[1], 2)
	assert.Len(t, view.Rows[2], 1)

	assert.Equal(t, SeatmapCell{Label: "A-01"}, view.Rows[0][0])
	assert.Equal(t, SeatmapCell{Label: "A-02", Occupied: true}, view.Rows[0][1])
	// A-04's interval is closed, so the seat is free again.
	assert.Equal(t, SeatmapCell{Label: "A-04"}, view.Rows[1][1])
}

func TestSeatmapHandle_ShowNames(t *testing.T) {
	db := seatmapFixture()
	handler := NewSeatmapHandler(services.NewOccupancyService(db), db)

	asOf := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	view, err := handler.Handle(context.Background(), asOf, 5, true)
	require.NoError(t, err)

	require.Len(t, view.Rows, 1)
	assert.Equal(t, SeatmapCell{Label: "A-02", Occupied: true, Occupant: "田中一郎"}, view.Rows[0][1])
	assert.Empty(t, view.Rows[0][3].Occupant)
}

func TestSeatmapHandle_DefaultColumns(t *testing.T) {
	db := seatmapFixture()
	handler := NewSeatmapHandler(services.NewOccupancyService(db), db)

	view, err := handler.Handle(context.Background(), time.Now(), 0, false)
	require.NoError(t, err)

	// Five seats fall into a full default-width row plus one leftover.
	require.Len(t, view.Rows, 2)
	assert.Len(t, view.Rows[0], services.DefaultSeatmapColumns)
	assert.Len(t, view.Rows[1], 1)
}
