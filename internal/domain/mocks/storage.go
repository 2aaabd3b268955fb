package mocks

import (
	"context"
	"strings"

	"github.com/ersonp/datask-core/internal/domain/entities"
	"github.com/ersonp/datask-core/internal/domain/ports"
)

// StorageDB is an in-memory mock implementation of ports.StorageDB.
// Slices play the role of tables; their order is the engine's natural row
// order, so tie-breaks in tests are deterministic.
type StorageDB struct {
	Seats     []entities.Seat
	Employees []entities.Employee
	Intervals []entities.UsageInterval

	// Result and QueryErr configure RunQuery.
	Result   *entities.ResultSet
	QueryErr error

	// Err, when set, is returned by every read method.
	Err error

	// Executed records every statement passed to RunQuery.
	Executed []string
}

// EnsureSchema is a no-op for the in-memory mock.
func (m *StorageDB) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close is a no-op for the in-memory mock.
func (m *StorageDB) Close() error {
	return nil
}

// FindEmployeeByName matches the fragment against the in-memory employees
// under the given tier, returning the first hit in slice order.
func (m *StorageDB) FindEmployeeByName(_ context.Context, match ports.NameMatch, fragment string) (*entities.Employee, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Employees {
		emp := m.Employees[i]
		var ok bool
		switch match {
		case ports.MatchExact:
			ok = emp.Name == fragment
		case ports.MatchPrefix:
			ok = strings.HasPrefix(emp.Name, fragment)
		case ports.MatchSubstring:
			ok = strings.Contains(emp.Name, fragment)
		}
		if ok {
			return &emp, nil
		}
	}
	return nil, nil
}

// ListSeats returns the configured seats.
func (m *StorageDB) ListSeats(_ context.Context) ([]entities.Seat, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Seats, nil
}

// ListIntervals returns the configured intervals.
func (m *StorageDB) ListIntervals(_ context.Context) ([]entities.UsageInterval, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Intervals, nil
}

// IntervalsByEmployee filters the configured intervals by employee code.
func (m *StorageDB) IntervalsByEmployee(_ context.Context, empCode string) ([]entities.UsageInterval, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []entities.UsageInterval
	for _, iv := range m.Intervals {
		if iv.EmpCode == empCode {
			out = append(out, iv)
		}
	}
	return out, nil
}

// RunQuery records the statement and returns the configured result.
func (m *StorageDB) RunQuery(_ context.Context, stmt string) (*entities.ResultSet, error) {
	m.Executed = append(m.Executed, stmt)
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	if m.Result != nil {
		return m.Result, nil
	}
	return &entities.ResultSet{}, nil
}
