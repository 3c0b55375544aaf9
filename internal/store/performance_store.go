package store

import (
	"context"
	"strconv"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/domain"
)

var performanceHeader = []string{"EmployeeID", "Rating", "ProjectsCompleted", "AvgDailyHours", "Attrition", "Reason"}

// PerformanceStore is the append-only performance table. Referential
// integrity against the employees table is enforced at write time:
// a row citing an unknown employee is rejected before anything is
// written.
type PerformanceStore struct {
	t         *table
	employees domain.EmployeeStore
}

// NewPerformanceStore opens (or creates) the performance table at
// path. employees is consulted on every Append.
func NewPerformanceStore(path string, employees domain.EmployeeStore) (*PerformanceStore, error) {
	t, err := openTable(path, performanceHeader)
	if err != nil {
		return nil, err
	}
	return &PerformanceStore{t: t, employees: employees}, nil
}

// Append validates p, verifies the cited employee exists and durably
// persists the row. The attrition reason is meaningful only for
// attrited rows and is cleared otherwise.
func (s *PerformanceStore) Append(ctx context.Context, p *domain.Performance) error {
	if err := validatePerformance(p); err != nil {
		return err
	}

	ok, err := s.employees.Exists(ctx, p.EmployeeID)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.ReferenceNotFoundError{EmployeeID: p.EmployeeID}
	}

	if p.Attrition == 0 {
		p.Reason = ""
	}

	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	return s.t.appendRow(encodePerformance(p))
}

// Scan returns every performance row in insertion order.
func (s *PerformanceStore) Scan(ctx context.Context) ([]domain.Performance, error) {
	rows, err := s.t.readAll()
	if err != nil {
		return nil, err
	}

	records := make([]domain.Performance, 0, len(rows))
	for _, row := range rows {
		p, err := decodePerformance(row)
		if err != nil {
			return nil, &domain.StorageError{Op: "read", Path: s.t.path, Err: err}
		}
		records = append(records, p)
	}
	return records, nil
}

func validatePerformance(p *domain.Performance) error {
	switch {
	case p.EmployeeID <= 0:
		return &domain.ValidationError{Field: "EmployeeID", Reason: "must be a positive integer"}
	case p.ProjectsCompleted < 0:
		return &domain.ValidationError{Field: "ProjectsCompleted", Reason: "must not be negative"}
	case p.AvgDailyHours < 0:
		return &domain.ValidationError{Field: "AvgDailyHours", Reason: "must not be negative"}
	case p.Attrition != 0 && p.Attrition != 1:
		return &domain.ValidationError{Field: "Attrition", Reason: "must be 0 or 1"}
	}
	return nil
}

func encodePerformance(p *domain.Performance) []string {
	return []string{
		strconv.Itoa(p.EmployeeID),
		strconv.Itoa(p.Rating),
		strconv.Itoa(p.ProjectsCompleted),
		strconv.FormatFloat(p.AvgDailyHours, 'g', -1, 64),
		strconv.Itoa(p.Attrition),
		p.Reason,
	}
}

func decodePerformance(row []string) (domain.Performance, error) {
	var p domain.Performance
	var err error
	if p.EmployeeID, err = strconv.Atoi(row[0]); err != nil {
		return p, err
	}
	if p.Rating, err = strconv.Atoi(row[1]); err != nil {
		return p, err
	}
	if p.ProjectsCompleted, err = strconv.Atoi(row[2]); err != nil {
		return p, err
	}
	if p.AvgDailyHours, err = strconv.ParseFloat(row[3], 64); err != nil {
		return p, err
	}
	if p.Attrition, err = strconv.Atoi(row[4]); err != nil {
		return p, err
	}
	p.Reason = row[5]
	return p, nil
}
