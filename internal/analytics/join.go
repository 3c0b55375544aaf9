// Package analytics builds the ephemeral joined view of the two tables
// and computes the fixed catalogue of summary statistics over it.
// Nothing in this package mutates state; every call works on a fresh
// per-request snapshot.
package analytics

import (
	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/domain"
)

// Join relates performance rows to employee rows on EmployeeID.
//
// The join is inner: performance rows citing an unknown employee are
// dropped (write-time validation is the real integrity guard, this is
// defense in depth), and employees with zero performance rows do not
// appear — analytics answer "how do employees with recorded
// performance behave", not "all employees". Output order follows the
// performance table's scan order, so multiple rows per employee are
// all preserved as distinct joined rows.
func Join(employees []domain.Employee, performance []domain.Performance) []domain.JoinedRow {
	byID := make(map[int]domain.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	rows := make([]domain.JoinedRow, 0, len(performance))
	for _, p := range performance {
		e, ok := byID[p.EmployeeID]
		if !ok {
			continue
		}
		rows = append(rows, domain.JoinedRow{Employee: e, Performance: p})
	}
	return rows
}
