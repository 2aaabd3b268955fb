package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/ersonp/datask-core/internal/domain/ports"
	"github.com/ersonp/datask-core/internal/domain/services"
)

// SeatmapCell is one seat in the rendered grid.
type SeatmapCell struct {
	Label    string `json:"label"`
	Occupied bool   `json:"occupied"`
	Occupant string `json:"occupant,omitempty"`
}

// SeatmapView is the seat grid handed to the rendering collaborator.
type SeatmapView struct {
	Rows [][]SeatmapCell `json:"rows"`
	AsOf time.Time       `json:"as_of"`
}

// SeatmapHandler builds the current seat map.
type SeatmapHandler struct {
	occupancy *services.OccupancyService
	db        ports.StorageDB
}

// NewSeatmapHandler creates a new seatmap handler.
func NewSeatmapHandler(occupancy *services.OccupancyService, db ports.StorageDB) *SeatmapHandler {
	return &SeatmapHandler{
		occupancy: occupancy,
		db:        db,
	}
}

// Handle lays all seats out into a fixed-width grid and marks occupancy
// as of the given time. With showNames set, occupied cells also carry the
// occupant's display name.
func (h *SeatmapHandler) Handle(ctx context.Context, asOf time.Time, columns int, showNames bool) (*SeatmapView, error) {
	if columns <= 0 {
		columns = services.DefaultSeatmapColumns
	}

	seats, err := h.db.ListSeats(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing seats: %w", err)
	}
	occupied, err := h.occupancy.CurrentlyOccupied(ctx, asOf)
	if err != nil {
		return nil, err
	}
	var names map[string]string
	if showNames {
		names, err = h.occupancy.OccupantNames(ctx, asOf)
		if err != nil {
			return nil, err
		}
	}

	labels := make([]string, 0, len(seats))
	for _, seat := range seats {
		labels = append(labels, seat.Label)
	}

	view := &SeatmapView{AsOf: asOf}
	for _, row := range services.Layout(labels, columns) {
		cells := make([]SeatmapCell, 0, len(row))
		for _, label := range row {
			_, isOccupied := occupied[label]
			cells = append(cells, SeatmapCell{
				Label:    label,
				Occupied: isOccupied,
				Occupant: names[label],
			})
		}
		view.Rows = append(view.Rows, cells)
	}
	return view, nil
}
