package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"

	"commis/internal/domain"
)

// rejectColumns defines the CSV header row for ingestion error reports.
var rejectColumns = []string{
	"Row",
	"Field",
	"Code",
	"Value",
	"Message",
}

// RejectWriter exports the row rejects of one ingestion as CSV, so an
// operator can fix the offending rows in the source file and re-upload.
type RejectWriter struct {
	csv *csv.Writer
}

// NewRejectWriter creates a RejectWriter that writes CSV to w.
func NewRejectWriter(w io.Writer) *RejectWriter {
	return &RejectWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *RejectWriter) WriteHeader() error {
	return w.csv.Write(rejectColumns)
}

// WriteRejects converts rejects to CSV rows and writes them.
func (w *RejectWriter) WriteRejects(rejects []domain.RowReject) error {
	for _, r := range rejects {
		row := []string{
			strconv.Itoa(r.Row),
			r.Field,
			string(r.Code),
			r.Value,
			r.Message,
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *RejectWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *RejectWriter) Error() error {
	return w.csv.Error()
}
