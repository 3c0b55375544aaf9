package store

import (
	"context"
	"strconv"
	"strings"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/domain"
)

// BaseEmployeeID is the identifier assigned to the first employee of an
// empty store.
const BaseEmployeeID = 1001

var employeeHeader = []string{"EmployeeID", "Name", "Age", "Department", "Role", "Salary", "JoiningYear", "Gender"}

// EmployeeStore is the append-only employees table. It owns identifier
// integrity: the next ID is always max(existing)+1, recomputed from the
// durable file under the table lock so allocation stays correct across
// restarts and concurrent writers.
type EmployeeStore struct {
	t *table
}

// NewEmployeeStore opens (or creates) the employees table at path.
func NewEmployeeStore(path string) (*EmployeeStore, error) {
	t, err := openTable(path, employeeHeader)
	if err != nil {
		return nil, err
	}
	return &EmployeeStore{t: t}, nil
}

// Append validates e, assigns the next identifier and durably persists
// the row. The assigned identifier is returned and also written back
// into e.ID.
func (s *EmployeeStore) Append(ctx context.Context, e *domain.Employee) (int, error) {
	if err := validateEmployee(e); err != nil {
		return 0, err
	}

	// Read-max-then-append is the single correctness-critical section
	// of the engine; the lock spans both steps.
	s.t.mu.Lock()
	defer s.t.mu.Unlock()

	rows, err := s.t.readAll()
	if err != nil {
		return 0, err
	}

	next := BaseEmployeeID
	for _, row := range rows {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return 0, &domain.StorageError{Op: "read", Path: s.t.path, Err: err}
		}
		if id >= next {
			next = id + 1
		}
	}

	e.ID = next
	if err := s.t.appendRow(encodeEmployee(e)); err != nil {
		return 0, err
	}
	return next, nil
}

// Scan returns every employee in insertion order, freshly read from
// the durable file.
func (s *EmployeeStore) Scan(ctx context.Context) ([]domain.Employee, error) {
	rows, err := s.t.readAll()
	if err != nil {
		return nil, err
	}

	employees := make([]domain.Employee, 0, len(rows))
	for _, row := range rows {
		e, err := decodeEmployee(row)
		if err != nil {
			return nil, &domain.StorageError{Op: "read", Path: s.t.path, Err: err}
		}
		employees = append(employees, e)
	}
	return employees, nil
}

// Exists reports whether an employee with the given identifier is
// present in the table.
func (s *EmployeeStore) Exists(ctx context.Context, id int) (bool, error) {
	employees, err := s.Scan(ctx)
	if err != nil {
		return false, err
	}
	for i := range employees {
		if employees[i].ID == id {
			return true, nil
		}
	}
	return false, nil
}

func validateEmployee(e *domain.Employee) error {
	switch {
	case strings.TrimSpace(e.Name) == "":
		return &domain.ValidationError{Field: "Name", Reason: "must not be empty"}
	case e.Age <= 0:
		return &domain.ValidationError{Field: "Age", Reason: "must be a positive integer"}
	case strings.TrimSpace(e.Department) == "":
		return &domain.ValidationError{Field: "Department", Reason: "must not be empty"}
	case strings.TrimSpace(e.Role) == "":
		return &domain.ValidationError{Field: "Role", Reason: "must not be empty"}
	case e.Salary < 0:
		return &domain.ValidationError{Field: "Salary", Reason: "must not be negative"}
	case e.JoiningYear <= 0:
		return &domain.ValidationError{Field: "JoiningYear", Reason: "must be a positive integer"}
	case strings.TrimSpace(e.Gender) == "":
		return &domain.ValidationError{Field: "Gender", Reason: "must not be empty"}
	}
	return nil
}

func encodeEmployee(e *domain.Employee) []string {
	return []string{
		strconv.Itoa(e.ID),
		e.Name,
		strconv.Itoa(e.Age),
		e.Department,
		e.Role,
		strconv.Itoa(e.Salary),
		strconv.Itoa(e.JoiningYear),
		e.Gender,
	}
}

func decodeEmployee(row []string) (domain.Employee, error) {
	var e domain.Employee
	var err error
	if e.ID, err = strconv.Atoi(row[0]); err != nil {
		return e, err
	}
	e.Name = row[1]
	if e.Age, err = strconv.Atoi(row[2]); err != nil {
		return e, err
	}
	e.Department = row[3]
	e.Role = row[4]
	if e.Salary, err = strconv.Atoi(row[5]); err != nil {
		return e, err
	}
	if e.JoiningYear, err = strconv.Atoi(row[6]); err != nil {
		return e, err
	}
	e.Gender = row[7]
	return e, nil
}
