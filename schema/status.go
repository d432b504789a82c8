package schema

import "time"

// RunStoreStatus holds status information about the run history store.
type RunStoreStatus struct {
	Backend    DatabaseBackend
	Path       string // file path for SQLite, DSN host for server backends
	TotalRuns  int64
	LastRun    *time.Time
	TableSizes map[string]int64
}
