package service

import (
	"context"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/domain"
	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/logger"
)

// PeopleService owns the two write entry points of the engine.
type PeopleService struct {
	employees   domain.EmployeeStore
	performance domain.PerformanceStore
}

// NewPeopleService creates a new PeopleService instance.
func NewPeopleService(employees domain.EmployeeStore, performance domain.PerformanceStore) *PeopleService {
	return &PeopleService{employees: employees, performance: performance}
}

// AddEmployee appends a new employee and returns the assigned
// identifier.
func (s *PeopleService) AddEmployee(ctx context.Context, e *domain.Employee) (int, error) {
	id, err := s.employees.Append(ctx, e)
	if err != nil {
		return 0, err
	}
	logger.Info(ctx, "employee %d added to %s", id, e.Department)
	return id, nil
}

// AddPerformance appends a performance record for an existing
// employee.
func (s *PeopleService) AddPerformance(ctx context.Context, p *domain.Performance) error {
	if err := s.performance.Append(ctx, p); err != nil {
		return err
	}
	logger.Info(ctx, "performance record added for employee %d", p.EmployeeID)
	return nil
}
