// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/sw360/sw360-dashboard/schema"
)

// DocumentSource defines the fetch operations the pipeline needs from the
// document store. This allows the core logic to be tested without a live
// CouchDB instance. Every method pages through the store until the entity
// set is exhausted; callers never see partial results.
type DocumentSource interface {
	// FetchComponents returns every component document in fetch order.
	FetchComponents(ctx context.Context) ([]schema.ComponentDoc, error)

	// FetchReleases returns every release document in fetch order.
	FetchReleases(ctx context.Context) ([]schema.ReleaseDoc, error)

	// FetchProjects returns every project document in fetch order.
	FetchProjects(ctx context.Context) ([]schema.ProjectDoc, error)
}

// MetricEmitter defines the push operations the pipeline needs from the
// metrics gateway boundary.
type MetricEmitter interface {
	// Push builds the full metric batch from the aggregate and pushes it
	// atomically under the configured job label.
	Push(ctx context.Context, agg *schema.AggregateResult) error

	// Render returns the metric batch in text exposition format without
	// pushing, for dry-run verification.
	Render(agg *schema.AggregateResult) (string, error)
}

// RunStore defines the interface for tracking collection runs.
type RunStore interface {
	// BeginRun creates a new collection run and returns its unique ID.
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the collection run with completion data.
	EndRun(runID int64, endTime time.Time, agg *schema.AggregateResult, pushed bool) error

	// RecordRankings stores the top-N rankings of a completed run.
	RecordRankings(runID int64, agg *schema.AggregateResult) error

	// GetStatus returns status information about the run store.
	GetStatus() (schema.RunStoreStatus, error)

	// GetAllRuns returns every recorded collection run.
	GetAllRuns() ([]schema.CollectionRunRecord, error)

	// GetAllRankings returns every recorded ranking entry.
	GetAllRankings() ([]schema.RankingRecord, error)

	// Clear removes all recorded runs and rankings.
	Clear() error

	// Close closes the underlying connection.
	Close() error
}

// RunManager provides access to the run store. It exists so commands and the
// MCP layer can share one initialized store and tests can swap in a mock.
type RunManager interface {
	GetRunStore() RunStore
}
