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

func usageFixture() *mocks.StorageDB {
	jan := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC)
	return &mocks.StorageDB{
		Employees: []entities.Employee{
			{Code: "E10001", Name: "田中一郎", Dept: "営業部"},
		},
		Intervals: []entities.UsageInterval{
			{SeatLabel: "A-01", EmpCode: "E10001", CheckIn: jan},
			{SeatLabel: "A-01", EmpCode: "E10001", CheckIn: jan.AddDate(0, 0, 1)},
			{SeatLabel: "A-02", EmpCode: "E10001", CheckIn: feb},
		},
	}
}

func newUsageHandler(db *mocks.StorageDB) *UsageHandler {
	return NewUsageHandler(services.NewOccupancyService(db), services.NewResolver(db))
}

func TestUsagePerSeat(t *testing.T) {
	handler := newUsageHandler(usageFixture())

	usage, err := handler.PerSeat(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []entities.SeatUsage{
		{Label: "A-01", Count: 2},
		{Label: "A-02", Count: 1},
	}, usage)
}

func TestUsageMonthlyByEmployee_WithCode(t *testing.T) {
	handler := newUsageHandler(usageFixture())

	usage, err := handler.MonthlyByEmployee(context.Background(), "E10001", "田中一郎")
	require.NoError(t, err)

	assert.Equal(t, "E10001", usage.Code)
	assert.Equal(t, []entities.MonthlyUsage{
		{Month: "2025-01", Count: 2},
		{Month: "2025-02", Count: 1},
	}, usage.Months)
}

func TestUsageMonthlyByEmployee_ResolvesName(t *testing.T) {
	handler := newUsageHandler(usageFixture())

	usage, err := handler.MonthlyByEmployee(context.Background(), "", "田中")
	require.NoError(t, err)

	assert.Equal(t, "E10001", usage.Code)
	assert.Equal(t, "田中一郎", usage.Name)
	require.Len(t, usage.Months, 2)
}

func TestUsageMonthlyByEmployee_NameNotFound(t *testing.T) {
	handler := newUsageHandler(usageFixture())

	_, err := handler.MonthlyByEmployee(context.Background(), "", "山田")
	require.ErrorIs(t, err, entities.ErrEmployeeNotFound)
}
