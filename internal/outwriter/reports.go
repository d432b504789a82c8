package outwriter

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/sw360/sw360-dashboard/internal/contract"
	"github.com/sw360/sw360-dashboard/schema"
)

// WriteJSONReport writes the full aggregate result to a JSON report file.
// The write is atomic so a crash mid-write never leaves a truncated report
// behind for downstream consumers.
func WriteJSONReport(agg *schema.AggregateResult, path string) error {
	return writeReportAtomic(path, func(w io.Writer) error {
		return writeJSON(w, agg)
	})
}

// WriteCSVReport writes the flattened aggregate result to a CSV report file.
func WriteCSVReport(agg *schema.AggregateResult, path string) error {
	return writeReportAtomic(path, func(w io.Writer) error {
		return writeCSVWithHeader(w, aggregateCSVHeader, func(cw *csv.Writer) error {
			return writeAggregateCSVRows(cw, agg)
		})
	})
}

// writeReportAtomic writes through a temp file in the target directory and
// renames it into place. Rename within one filesystem is atomic.
func writeReportAtomic(path string, writer func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return &contract.ReportWriteFailedError{Path: path, Err: err}
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // No-op after successful rename

	if err := writer(tmp); err != nil {
		_ = tmp.Close()
		return &contract.ReportWriteFailedError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &contract.ReportWriteFailedError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &contract.ReportWriteFailedError{Path: path, Err: err}
	}
	return nil
}
