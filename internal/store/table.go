package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/domain"
)

// table is a durable append-only CSV file with a fixed header row.
// Every read goes back to the file, so appends from elsewhere in the
// process are visible to the next scan. The mutex serialises appends;
// callers that need a read-then-write span (identifier allocation)
// hold it across both steps.
type table struct {
	path   string
	header []string
	mu     sync.Mutex
}

// openTable opens the CSV table at path, creating it with the given
// header when it does not exist yet.
func openTable(path string, header []string) (*table, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &domain.StorageError{Op: "create", Path: path, Err: err}
		}
	}

	t := &table{path: path, header: header}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, &domain.StorageError{Op: "create", Path: path, Err: err}
		}
		defer file.Close()

		w := csv.NewWriter(file)
		if err := w.Write(header); err != nil {
			return nil, &domain.StorageError{Op: "create", Path: path, Err: err}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, &domain.StorageError{Op: "create", Path: path, Err: err}
		}
	}

	return t, nil
}

// readAll returns every data row in file order, header excluded.
func (t *table) readAll() ([][]string, error) {
	file, err := os.Open(t.path)
	if err != nil {
		return nil, &domain.StorageError{Op: "read", Path: t.path, Err: err}
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(t.header)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, &domain.StorageError{Op: "read", Path: t.path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &domain.StorageError{Op: "read", Path: t.path, Err: fmt.Errorf("missing header row")}
	}
	return rows[1:], nil
}

// appendRow persists record as the new last row of the table.
func (t *table) appendRow(record []string) error {
	file, err := os.OpenFile(t.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return &domain.StorageError{Op: "append", Path: t.path, Err: err}
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(record); err != nil {
		return &domain.StorageError{Op: "append", Path: t.path, Err: err}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &domain.StorageError{Op: "append", Path: t.path, Err: err}
	}
	return nil
}
