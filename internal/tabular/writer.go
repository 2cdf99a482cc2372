// Package tabular renders record streams as CSV and stacks flattened CSV
// files from several download periods into one table.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jjenkins/lobbying/internal/records"
)

// Writer writes a header row followed by record rows. Null cells are written
// as empty cells.
type Writer struct {
	csv  *csv.Writer
	rows int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

func (w *Writer) WriteHeader(header []string) error {
	if err := w.csv.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

func (w *Writer) WriteRows(rows []records.Row) error {
	for _, r := range rows {
		if err := w.csv.Write(r.Strings()); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
		w.rows++
	}
	return nil
}

// Rows is the number of data rows written so far.
func (w *Writer) Rows() int {
	return w.rows
}

// Flush writes buffered output and reports any deferred write error.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}
