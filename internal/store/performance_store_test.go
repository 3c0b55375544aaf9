package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/domain"
)

func newTestStores(t *testing.T) (*EmployeeStore, *PerformanceStore) {
	t.Helper()
	dir := t.TempDir()
	employees, err := NewEmployeeStore(filepath.Join(dir, "employees.csv"))
	require.NoError(t, err)
	performance, err := NewPerformanceStore(filepath.Join(dir, "performance.csv"), employees)
	require.NoError(t, err)
	return employees, performance
}

func TestPerformanceStoreAppendAndScan(t *testing.T) {
	ctx := context.Background()
	employees, performance := newTestStores(t)

	id, err := employees.Append(ctx, testEmployee())
	require.NoError(t, err)

	p := &domain.Performance{
		EmployeeID:        id,
		Rating:            4,
		ProjectsCompleted: 3,
		AvgDailyHours:     8.5,
		Attrition:         1,
		Reason:            "Relocation",
	}
	require.NoError(t, performance.Append(ctx, p))

	records, err := performance.Scan(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, *p, records[0])
}

func TestPerformanceStoreRejectsUnknownEmployee(t *testing.T) {
	ctx := context.Background()
	employees, performance := newTestStores(t)

	_, err := employees.Append(ctx, testEmployee())
	require.NoError(t, err)

	before, err := performance.Scan(ctx)
	require.NoError(t, err)

	err = performance.Append(ctx, &domain.Performance{EmployeeID: 9999, Rating: 4})
	assert.True(t, domain.IsReferenceNotFound(err), "expected ReferenceNotFound, got %v", err)

	after, err := performance.Scan(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after), "rejected row must not mutate the table")
}

func TestPerformanceStoreClearsReasonWithoutAttrition(t *testing.T) {
	ctx := context.Background()
	employees, performance := newTestStores(t)

	id, err := employees.Append(ctx, testEmployee())
	require.NoError(t, err)

	require.NoError(t, performance.Append(ctx, &domain.Performance{
		EmployeeID: id,
		Rating:     5,
		Attrition:  0,
		Reason:     "should be dropped",
	}))

	records, err := performance.Scan(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Reason)
}

func TestPerformanceStoreValidation(t *testing.T) {
	ctx := context.Background()
	employees, performance := newTestStores(t)

	id, err := employees.Append(ctx, testEmployee())
	require.NoError(t, err)

	cases := []struct {
		name string
		row  domain.Performance
	}{
		{"non-positive employee id", domain.Performance{EmployeeID: 0, Rating: 3}},
		{"negative projects", domain.Performance{EmployeeID: id, Rating: 3, ProjectsCompleted: -1}},
		{"negative hours", domain.Performance{EmployeeID: id, Rating: 3, AvgDailyHours: -0.5}},
		{"attrition out of range", domain.Performance{EmployeeID: id, Rating: 3, Attrition: 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := tc.row
			err := performance.Append(ctx, &row)
			assert.True(t, domain.IsValidation(err), "expected ValidationError, got %v", err)
		})
	}
}
