package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ersonp/datask-core/internal/domain/entities"
	"github.com/ersonp/datask-core/internal/domain/ports"
)

// DefaultSeatmapColumns matches the office floor layout.
const DefaultSeatmapColumns = 4

// OccupancyService derives point-in-time seat state and usage aggregates
// from the interval log. All operations are reads; results are advisory
// snapshots that may be stale by the time a caller renders them.
type OccupancyService struct {
	db ports.StorageDB
}

// NewOccupancyService creates a new occupancy service.
func NewOccupancyService(db ports.StorageDB) *OccupancyService {
	return &OccupancyService{db: db}
}

// CurrentlyOccupied returns the labels of seats with an open interval as
// of the given time. Intervals with a set check-out or a check-in after
// asOf do not count.
func (s *OccupancyService) CurrentlyOccupied(ctx context.Context, asOf time.Time) (map[string]struct{}, error) {
	intervals, err := s.db.ListIntervals(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing usage intervals: %w", err)
	}
	occupied := make(map[string]struct{})
	for _, iv := range intervals {
		if iv.Open() && !iv.CheckIn.After(asOf) {
			occupied[iv.SeatLabel] = struct{}{}
		}
	}
	return occupied, nil
}

// OccupantNames maps occupied seat labels to the occupant's name as of
// the given time. Should the log ever hold two open intervals for one
// seat the last-seen row wins; the writer is expected to prevent that.
func (s *OccupancyService) OccupantNames(ctx context.Context, asOf time.Time) (map[string]string, error) {
	intervals, err := s.db.ListIntervals(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing usage intervals: %w", err)
	}
	names := make(map[string]string)
	for _, iv := range intervals {
		if iv.Open() && !iv.CheckIn.After(asOf) {
			names[iv.SeatLabel] = iv.EmpName
		}
	}
	return names, nil
}

// Layout sorts labels ascending and chunks them into rows of the given
// width; the final row may be short. Pure transform, no storage access.
func Layout(labels []string, columns int) [][]string {
	if columns <= 0 || len(labels) == 0 {
		return nil
	}
	sorted := make([]string, len(labels))
	copy(sorted, labels)
	sort.Strings(sorted)

	rows := make([][]string, 0, (len(sorted)+columns-1)/columns)
	for i := 0; i < len(sorted); i += columns {
		end := i + columns
		if end > len(sorted) {
			end = len(sorted)
		}
		rows = append(rows, sorted[i:end])
	}
	return rows
}

// UsageCountsPerSeat counts intervals per seat label, ordered ascending
// by label.
func (s *OccupancyService) UsageCountsPerSeat(ctx context.Context) ([]entities.SeatUsage, error) {
	intervals, err := s.db.ListIntervals(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing usage intervals: %w", err)
	}
	counts := make(map[string]int)
	for _, iv := range intervals {
		counts[iv.SeatLabel]++
	}
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	usage := make([]entities.SeatUsage, 0, len(labels))
	for _, label := range labels {
		usage = append(usage, entities.SeatUsage{Label: label, Count: counts[label]})
	}
	return usage, nil
}

// MonthlyUsageByEmployee groups one employee's intervals by the calendar
// month of the check-in, ascending by month. Months with no usage are
// omitted, not zero-filled.
func (s *OccupancyService) MonthlyUsageByEmployee(ctx context.Context, empCode string) ([]entities.MonthlyUsage, error) {
	intervals, err := s.db.IntervalsByEmployee(ctx, empCode)
	if err != nil {
		return nil, fmt.Errorf("listing usage intervals for %s: %w", empCode, err)
	}
	counts := make(map[string]int)
	for _, iv := range intervals {
		counts[iv.CheckIn.Format("2006-01")]++
	}
	months := make([]string, 0, len(counts))
	for month := range counts {
		months = append(months, month)
	}
	sort.Strings(months)

	usage := make([]entities.MonthlyUsage, 0, len(months))
	for _, month := range months {
		usage = append(usage, entities.MonthlyUsage{Month: month, Count: counts[month]})
	}
	return usage, nil
}
