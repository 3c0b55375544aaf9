package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/domain"
)

func row(dept string, rating, salary, attrition int, reason string) domain.JoinedRow {
	return domain.JoinedRow{
		Employee:    domain.Employee{Department: dept, Salary: salary},
		Performance: domain.Performance{Rating: rating, Attrition: attrition, Reason: reason},
	}
}

func TestMeanRoundsToRequestedPrecision(t *testing.T) {
	ds := NewDataset([]domain.JoinedRow{
		row("Engineering", 4, 80000, 0, ""),
		row("Engineering", 5, 70000, 0, ""),
		row("Sales", 2, 50000, 0, ""),
	})

	avg, err := ds.Mean(func(r domain.JoinedRow) float64 { return float64(r.Rating) }, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.67, avg)

	salary, err := ds.Mean(func(r domain.JoinedRow) float64 { return float64(r.Salary) }, 0)
	require.NoError(t, err)
	assert.Equal(t, 66667.0, salary)
}

func TestMeanAndRateFailOnEmptyView(t *testing.T) {
	empty := NewDataset(nil)

	_, err := empty.Mean(func(r domain.JoinedRow) float64 { return float64(r.Rating) }, 2)
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)

	_, err = empty.Rate(func(r domain.JoinedRow) int { return r.Attrition })
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)

	// Filtering to nothing must behave the same.
	filtered := NewDataset([]domain.JoinedRow{row("Engineering", 4, 1, 0, "")}).
		Filter(func(r domain.JoinedRow) bool { return false })
	_, err = filtered.Mean(func(r domain.JoinedRow) float64 { return float64(r.Rating) }, 2)
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)
}

func TestRateIsPercentageWithOneDecimal(t *testing.T) {
	ds := NewDataset([]domain.JoinedRow{
		row("A", 3, 1, 1, "x"),
		row("A", 3, 1, 0, ""),
		row("A", 3, 1, 0, ""),
	})

	rate, err := ds.Rate(func(r domain.JoinedRow) int { return r.Attrition })
	require.NoError(t, err)
	assert.Equal(t, 33.3, rate)
}

func TestGroupCountOrdering(t *testing.T) {
	ds := NewDataset([]domain.JoinedRow{
		row("Sales", 3, 1, 0, ""),
		row("Engineering", 3, 1, 0, ""),
		row("Engineering", 3, 1, 0, ""),
		row("HR", 3, 1, 0, ""),
		row("Engineering", 3, 1, 0, ""),
		row("Sales", 3, 1, 0, ""),
	})

	counts := ds.GroupCount(func(r domain.JoinedRow) string { return r.Department })
	require.Len(t, counts, 3)
	assert.Equal(t, domain.CategoryCount{Value: "Engineering", Count: 3}, counts[0])
	assert.Equal(t, domain.CategoryCount{Value: "Sales", Count: 2}, counts[1])
	assert.Equal(t, domain.CategoryCount{Value: "HR", Count: 1}, counts[2])
}

func TestGroupCountTiesKeepFirstEncounteredOrder(t *testing.T) {
	ds := NewDataset([]domain.JoinedRow{
		row("Beta", 3, 1, 0, ""),
		row("Alpha", 3, 1, 0, ""),
	})

	counts := ds.GroupCount(func(r domain.JoinedRow) string { return r.Department })
	require.Len(t, counts, 2)
	assert.Equal(t, "Beta", counts[0].Value)
	assert.Equal(t, "Alpha", counts[1].Value)
}

func TestBucketCountOrdersAscendingByValue(t *testing.T) {
	ds := NewDataset([]domain.JoinedRow{
		row("A", 5, 1, 0, ""),
		row("A", 1, 1, 0, ""),
		row("A", 5, 1, 0, ""),
		row("A", 3, 1, 0, ""),
	})

	buckets := ds.BucketCount(func(r domain.JoinedRow) int { return r.Rating })
	require.Len(t, buckets, 3)
	assert.Equal(t, domain.BucketCount{Bucket: 1, Count: 1}, buckets[0])
	assert.Equal(t, domain.BucketCount{Bucket: 3, Count: 1}, buckets[1])
	assert.Equal(t, domain.BucketCount{Bucket: 5, Count: 2}, buckets[2])
}

func TestGroupMeanRoundsCurrencyToWholeUnits(t *testing.T) {
	ds := NewDataset([]domain.JoinedRow{
		row("Engineering", 3, 80000, 0, ""),
		row("Engineering", 3, 80001, 0, ""),
		row("Sales", 3, 50000, 0, ""),
	})

	means := ds.GroupMean(
		func(r domain.JoinedRow) string { return r.Department },
		func(r domain.JoinedRow) float64 { return float64(r.Salary) },
		0,
	)
	require.Len(t, means, 2)
	assert.Equal(t, domain.CategoryMean{Value: "Engineering", Mean: 80001}, means[0])
	assert.Equal(t, domain.CategoryMean{Value: "Sales", Mean: 50000}, means[1])
}

func TestAttritionReasonsCountEmptyAsUnspecified(t *testing.T) {
	ds := NewDataset([]domain.JoinedRow{
		row("A", 3, 1, 1, "Relocation"),
		row("A", 3, 1, 1, ""),
		row("A", 3, 1, 1, "Relocation"),
		row("A", 3, 1, 0, ""), // not attrited, excluded entirely
	})

	reasons := ds.AttritionReasons()
	require.Len(t, reasons, 2)
	assert.Equal(t, domain.CategoryCount{Value: "Relocation", Count: 2}, reasons[0])
	assert.Equal(t, domain.CategoryCount{Value: "Unspecified", Count: 1}, reasons[1])
}

func TestSampleBounds(t *testing.T) {
	rows := []domain.JoinedRow{
		row("A", 1, 10, 0, ""),
		row("A", 2, 20, 0, ""),
		row("A", 3, 30, 0, ""),
	}
	ds := NewDataset(rows)

	assert.Len(t, ds.Sample(2), 2)
	assert.Len(t, ds.Sample(100), len(rows), "sample never exceeds available rows")
	assert.Empty(t, ds.Sample(0))
	assert.Empty(t, NewDataset(nil).Sample(10))
}

func TestDepartmentScopedGroupCountHasSingleKey(t *testing.T) {
	ds := NewDataset([]domain.JoinedRow{
		row("Engineering", 3, 1, 0, ""),
		row("Engineering", 4, 1, 0, ""),
		row("Sales", 3, 1, 0, ""),
	})

	scoped := ds.Filter(func(r domain.JoinedRow) bool { return r.Department == "Engineering" })
	counts := scoped.GroupCount(func(r domain.JoinedRow) string { return r.Department })
	require.Len(t, counts, 1)
	assert.Equal(t, domain.CategoryCount{Value: "Engineering", Count: scoped.Count()}, counts[0])
}

func TestDepartmentsSortedUnique(t *testing.T) {
	ds := NewDataset([]domain.JoinedRow{
		row("Sales", 3, 1, 0, ""),
		row("Engineering", 3, 1, 0, ""),
		row("Sales", 3, 1, 0, ""),
	})
	assert.Equal(t, []string{"Engineering", "Sales"}, ds.Departments())
}
