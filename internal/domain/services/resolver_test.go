package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/datask-core/internal/domain/entities"
	"github.com/ersonp/datask-core/internal/domain/mocks"
)

func testDirectory() []entities.Employee {
	return []entities.Employee{
		{Code: "E10001", Name: "田中一郎", Dept: "営業部"},
		{Code: "E10002", Name: "田中", Dept: "開発部"},
		{Code: "E10003", Name: "佐藤田中花子", Dept: "総務部"},
		{Code: "E10004", Name: "鈴木次郎", Dept: "開発部"},
	}
}

func TestResolverResolve_TierOrder(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		wantCode string
	}{
		{
			// "田中" matches E10002 exactly even though E10001 is a
			// prefix match and sits earlier in row order.
			name:     "exact beats prefix and substring",
			fragment: "田中",
			wantCode: "E10002",
		},
		{
			name:     "prefix beats substring",
			fragment: "田中一",
			wantCode: "E10001",
		},
		{
			name:     "substring as last tier",
			fragment: "花子",
			wantCode: "E10003",
		},
		{
			name:     "first row wins within a tier",
			fragment: "郎",
			wantCode: "E10001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolver(&mocks.StorageDB{Employees: testDirectory()})

			resolved, err := resolver.Resolve(context.Background(), tt.fragment)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resolved.Code)
		})
	}
}

func TestResolverResolve_NotFound(t *testing.T) {
	resolver := NewResolver(&mocks.StorageDB{Employees: testDirectory()})

	resolved, err := resolver.Resolve(context.Background(), "山田")
	require.ErrorIs(t, err, entities.ErrEmployeeNotFound)
	assert.Nil(t, resolved)
}

func TestResolverResolve_BlankFragment(t *testing.T) {
	resolver := NewResolver(&mocks.StorageDB{Employees: testDirectory()})

	_, err := resolver.Resolve(context.Background(), "   ")
	require.ErrorIs(t, err, entities.ErrEmployeeNotFound)
}

func TestResolverResolve_StorageError(t *testing.T) {
	storageErr := errors.New("connection refused")
	resolver := NewResolver(&mocks.StorageDB{Err: storageErr})

	_, err := resolver.Resolve(context.Background(), "田中")
	require.ErrorIs(t, err, storageErr)
}

func TestResolverResolve_Idempotent(t *testing.T) {
	resolver := NewResolver(&mocks.StorageDB{Employees: testDirectory()})

	first, err := resolver.Resolve(context.Background(), "花子")
	require.NoError(t, err)
	second, err := resolver.Resolve(context.Background(), "花子")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
