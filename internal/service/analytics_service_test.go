package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/domain"
	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/store"
)

func newTestServices(t *testing.T) (*PeopleService, *AnalyticsService) {
	t.Helper()
	dir := t.TempDir()
	employees, err := store.NewEmployeeStore(filepath.Join(dir, "employees.csv"))
	require.NoError(t, err)
	performance, err := store.NewPerformanceStore(filepath.Join(dir, "performance.csv"), employees)
	require.NoError(t, err)
	return NewPeopleService(employees, performance), NewAnalyticsService(employees, performance)
}

func TestEndToEndSingleEmployeeScenario(t *testing.T) {
	ctx := context.Background()
	people, analytics := newTestServices(t)

	id, err := people.AddEmployee(ctx, &domain.Employee{
		Name:        "Ananya Sharma",
		Age:         30,
		Department:  "Engineering",
		Role:        "Dev",
		Salary:      80000,
		JoiningYear: 2020,
		Gender:      "F",
	})
	require.NoError(t, err)
	assert.Equal(t, 1001, id, "empty store baseline")

	require.NoError(t, people.AddPerformance(ctx, &domain.Performance{
		EmployeeID:        id,
		Rating:            4,
		ProjectsCompleted: 3,
		AvgDailyHours:     8,
		Attrition:         0,
	}))

	rep, err := analytics.GlobalReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.TotalEmployees)
	assert.Equal(t, 4.0, rep.AvgRating)
	assert.Equal(t, 0.0, rep.AttritionRate)
	assert.Equal(t, []string{"Engineering"}, rep.Departments)
	require.Len(t, rep.DeptCounts, 1)
	assert.Equal(t, domain.CategoryCount{Value: "Engineering", Count: 1}, rep.DeptCounts[0])
	assert.Empty(t, rep.AttritionByDept)
	assert.Empty(t, rep.AttritionReasons)
}

func TestGlobalReportEmptyStoreFailsCleanly(t *testing.T) {
	ctx := context.Background()
	_, analytics := newTestServices(t)

	_, err := analytics.GlobalReport(ctx)
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)
}

func TestGlobalReportIgnoresEmployeesWithoutPerformance(t *testing.T) {
	ctx := context.Background()
	people, analytics := newTestServices(t)

	first, err := people.AddEmployee(ctx, &domain.Employee{
		Name: "A", Age: 30, Department: "Engineering", Role: "Dev",
		Salary: 80000, JoiningYear: 2020, Gender: "F",
	})
	require.NoError(t, err)
	_, err = people.AddEmployee(ctx, &domain.Employee{
		Name: "B", Age: 40, Department: "Sales", Role: "Manager",
		Salary: 90000, JoiningYear: 2018, Gender: "M",
	})
	require.NoError(t, err)

	require.NoError(t, people.AddPerformance(ctx, &domain.Performance{EmployeeID: first, Rating: 5}))

	rep, err := analytics.GlobalReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.TotalEmployees)
	assert.Equal(t, []string{"Engineering"}, rep.Departments)
}

func TestDepartmentReport(t *testing.T) {
	ctx := context.Background()
	people, analytics := newTestServices(t)

	id, err := people.AddEmployee(ctx, &domain.Employee{
		Name: "A", Age: 30, Department: "Engineering", Role: "Dev",
		Salary: 80000, JoiningYear: 2020, Gender: "F",
	})
	require.NoError(t, err)
	require.NoError(t, people.AddPerformance(ctx, &domain.Performance{
		EmployeeID: id, Rating: 4, ProjectsCompleted: 3, AvgDailyHours: 8.25, Attrition: 1, Reason: "Relocation",
	}))
	require.NoError(t, people.AddPerformance(ctx, &domain.Performance{
		EmployeeID: id, Rating: 5, ProjectsCompleted: 4, AvgDailyHours: 7.75,
	}))

	rep, err := analytics.DepartmentReport(ctx, "Engineering")
	require.NoError(t, err)
	assert.Equal(t, "Engineering", rep.Department)
	assert.Equal(t, 2, rep.TotalEmployees)
	assert.Equal(t, 4.5, rep.AvgRating)
	assert.Equal(t, 50.0, rep.AttritionRate)
	assert.Equal(t, 80000.0, rep.AvgSalary)
	assert.Equal(t, 1, rep.AttritionCount)
	assert.Equal(t, 3.5, rep.AvgProjects)
	assert.Equal(t, 8.0, rep.AvgDailyHours)
	assert.Len(t, rep.SalaryRatingData, 2)
	require.Len(t, rep.AttritionReasons, 1)
	assert.Equal(t, domain.CategoryCount{Value: "Relocation", Count: 1}, rep.AttritionReasons[0])
}

func TestDepartmentReportUnknownDepartment(t *testing.T) {
	ctx := context.Background()
	people, analytics := newTestServices(t)

	id, err := people.AddEmployee(ctx, &domain.Employee{
		Name: "A", Age: 30, Department: "Engineering", Role: "Dev",
		Salary: 80000, JoiningYear: 2020, Gender: "F",
	})
	require.NoError(t, err)
	require.NoError(t, people.AddPerformance(ctx, &domain.Performance{EmployeeID: id, Rating: 4}))

	_, err = analytics.DepartmentReport(ctx, "Legal")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Matching is exact and case-sensitive.
	_, err = analytics.DepartmentReport(ctx, "engineering")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDepartmentWithZeroAttritionIsNotAnError(t *testing.T) {
	ctx := context.Background()
	people, analytics := newTestServices(t)

	id, err := people.AddEmployee(ctx, &domain.Employee{
		Name: "A", Age: 30, Department: "Sales", Role: "Rep",
		Salary: 50000, JoiningYear: 2021, Gender: "M",
	})
	require.NoError(t, err)
	require.NoError(t, people.AddPerformance(ctx, &domain.Performance{EmployeeID: id, Rating: 3}))

	rep, err := analytics.DepartmentReport(ctx, "Sales")
	require.NoError(t, err)
	assert.Equal(t, 0.0, rep.AttritionRate)
	assert.Equal(t, 0, rep.AttritionCount)
	assert.Empty(t, rep.AttritionReasons)
}
