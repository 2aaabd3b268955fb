package handlers

import (
	"context"

	"github.com/ersonp/datask-core/internal/domain/entities"
	"github.com/ersonp/datask-core/internal/domain/services"
)

// EmployeeUsage is one employee's monthly usage series.
type EmployeeUsage struct {
	Code   string                  `json:"code"`
	Name   string                  `json:"name"`
	Months []entities.MonthlyUsage `json:"months"`
}

// UsageHandler serves the usage aggregates behind bar charts.
type UsageHandler struct {
	occupancy *services.OccupancyService
	resolver  *services.Resolver
}

// NewUsageHandler creates a new usage handler.
func NewUsageHandler(occupancy *services.OccupancyService, resolver *services.Resolver) *UsageHandler {
	return &UsageHandler{
		occupancy: occupancy,
		resolver:  resolver,
	}
}

// PerSeat returns interval counts per seat label, ordered by label.
func (h *UsageHandler) PerSeat(ctx context.Context) ([]entities.SeatUsage, error) {
	return h.occupancy.UsageCountsPerSeat(ctx)
}

// MonthlyByEmployee returns the monthly series for one employee. An
// empty code triggers name resolution on the fragment first, mirroring
// the router's chart branch.
func (h *UsageHandler) MonthlyByEmployee(ctx context.Context, code, name string) (*EmployeeUsage, error) {
	if code == "" {
		resolved, err := h.resolver.Resolve(ctx, name)
		if err != nil {
			return nil, err
		}
		code, name = resolved.Code, resolved.Name
	}
	months, err := h.occupancy.MonthlyUsageByEmployee(ctx, code)
	if err != nil {
		return nil, err
	}
	return &EmployeeUsage{
		Code:   code,
		Name:   name,
		Months: months,
	}, nil
}
