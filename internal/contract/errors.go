package contract

import "fmt"

// DataSourceUnavailableError aborts a run when a fetch exhausts its retries.
// No metrics are pushed from a partially fetched entity set; aggregates over
// incomplete data would silently corrupt rankings and totals.
type DataSourceUnavailableError struct {
	Entity string // entity type being fetched when the failure occurred
	Err    error
}

func (e *DataSourceUnavailableError) Error() string {
	return fmt.Sprintf("document store unavailable while fetching %s: %v", e.Entity, e.Err)
}

func (e *DataSourceUnavailableError) Unwrap() error { return e.Err }

// PushFailedError aborts a run when the metrics gateway rejects the batch or
// is unreachable. The batch is all-or-nothing; a half-updated dashboard is
// worse than a stale one.
type PushFailedError struct {
	Job string
	Err error
}

func (e *PushFailedError) Error() string {
	return fmt.Sprintf("push to gateway failed for job %q: %v", e.Job, e.Err)
}

func (e *PushFailedError) Unwrap() error { return e.Err }

// ReportWriteFailedError flags a filesystem problem while writing a report.
// It is logged but never blocks the metric push; the two sinks are
// independent.
type ReportWriteFailedError struct {
	Path string
	Err  error
}

func (e *ReportWriteFailedError) Error() string {
	return fmt.Sprintf("report write failed for %s: %v", e.Path, e.Err)
}

func (e *ReportWriteFailedError) Unwrap() error { return e.Err }
