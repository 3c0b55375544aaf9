package service

import (
	"context"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/analytics"
	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/domain"
)

// scatterSampleSize bounds the (salary, rating) sample in the global
// report.
const scatterSampleSize = 100

// AnalyticsService computes the fixed report catalogue over a fresh
// joined view per request.
type AnalyticsService struct {
	employees   domain.EmployeeStore
	performance domain.PerformanceStore
}

// NewAnalyticsService creates a new AnalyticsService instance.
func NewAnalyticsService(employees domain.EmployeeStore, performance domain.PerformanceStore) *AnalyticsService {
	return &AnalyticsService{employees: employees, performance: performance}
}

// joined scans both tables and builds the joined view. Every call sees
// durable state as of now; there is no caching.
func (s *AnalyticsService) joined(ctx context.Context) (analytics.Dataset, error) {
	employees, err := s.employees.Scan(ctx)
	if err != nil {
		return analytics.Dataset{}, err
	}
	performance, err := s.performance.Scan(ctx)
	if err != nil {
		return analytics.Dataset{}, err
	}
	return analytics.NewDataset(analytics.Join(employees, performance)), nil
}

// GlobalReport computes the full catalogue over the unfiltered joined
// view. An empty view fails with EmptyDataset rather than emitting
// NaN-shaped numbers.
func (s *AnalyticsService) GlobalReport(ctx context.Context) (*domain.AnalyticsReport, error) {
	ds, err := s.joined(ctx)
	if err != nil {
		return nil, err
	}

	avgRating, err := ds.Mean(func(r domain.JoinedRow) float64 { return float64(r.Rating) }, 2)
	if err != nil {
		return nil, err
	}
	attritionRate, err := ds.Rate(func(r domain.JoinedRow) int { return r.Attrition })
	if err != nil {
		return nil, err
	}

	attrited := ds.Filter(func(r domain.JoinedRow) bool { return r.Attrition == 1 })

	return &domain.AnalyticsReport{
		TotalEmployees:    ds.Count(),
		AvgRating:         avgRating,
		AttritionRate:     attritionRate,
		DeptCounts:        ds.GroupCount(department),
		AttritionByDept:   attrited.GroupCount(department),
		RoleCounts:        ds.GroupCount(role),
		SalaryRatingData:  ds.Sample(scatterSampleSize),
		SalaryByDept:      ds.GroupMean(department, func(r domain.JoinedRow) float64 { return float64(r.Salary) }, 0),
		RatingCounts:      ds.BucketCount(func(r domain.JoinedRow) int { return r.Rating }),
		JoiningYearCounts: ds.BucketCount(func(r domain.JoinedRow) int { return r.JoiningYear }),
		AttritionReasons:  ds.AttritionReasons(),
		Departments:       ds.Departments(),
	}, nil
}

// DepartmentReport computes the catalogue over the view filtered to
// one department. Matching is exact-string and case-sensitive; a
// department with zero joined rows is NotFound, which is distinct from
// a present department with zero attrition.
func (s *AnalyticsService) DepartmentReport(ctx context.Context, name string) (*domain.DepartmentReport, error) {
	ds, err := s.joined(ctx)
	if err != nil {
		return nil, err
	}

	dept := ds.Filter(func(r domain.JoinedRow) bool { return r.Department == name })
	if dept.Count() == 0 {
		return nil, domain.ErrNotFound
	}

	avgRating, err := dept.Mean(func(r domain.JoinedRow) float64 { return float64(r.Rating) }, 2)
	if err != nil {
		return nil, err
	}
	attritionRate, err := dept.Rate(func(r domain.JoinedRow) int { return r.Attrition })
	if err != nil {
		return nil, err
	}
	avgSalary, err := dept.Mean(func(r domain.JoinedRow) float64 { return float64(r.Salary) }, 0)
	if err != nil {
		return nil, err
	}
	avgProjects, err := dept.Mean(func(r domain.JoinedRow) float64 { return float64(r.ProjectsCompleted) }, 1)
	if err != nil {
		return nil, err
	}
	avgHours, err := dept.Mean(func(r domain.JoinedRow) float64 { return r.AvgDailyHours }, 1)
	if err != nil {
		return nil, err
	}

	return &domain.DepartmentReport{
		Department:         name,
		TotalEmployees:     dept.Count(),
		AvgRating:          avgRating,
		AttritionRate:      attritionRate,
		AvgSalary:          avgSalary,
		RoleCounts:         dept.GroupCount(role),
		RatingCounts:       dept.BucketCount(func(r domain.JoinedRow) int { return r.Rating }),
		JoiningYearCounts:  dept.BucketCount(func(r domain.JoinedRow) int { return r.JoiningYear }),
		SalaryRatingData:   dept.Points(),
		GenderDistribution: dept.GroupCount(func(r domain.JoinedRow) string { return r.Gender }),
		AttritionCount:     dept.Sum(func(r domain.JoinedRow) int { return r.Attrition }),
		AttritionReasons:   dept.AttritionReasons(),
		AvgProjects:        avgProjects,
		AvgDailyHours:      avgHours,
	}, nil
}

func department(r domain.JoinedRow) string { return r.Department }
func role(r domain.JoinedRow) string       { return r.Role }
