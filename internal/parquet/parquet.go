// Package parquet provides data structures and functions for exporting
// collection run history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/sw360/sw360-dashboard/schema"
)

// CollectionRun represents a single collection run with metadata.
// This struct maps to the sw360_collection_runs database table.
type CollectionRun struct {
	// RunID is the unique identifier for this collection run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the collection began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the collection completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int64 `parquet:"run_duration_ms,optional,snappy"`

	// Job is the pushgateway job the run pushed under
	Job string `parquet:"job,snappy"`

	// Group is the business unit the run was scoped to, empty for full runs
	Group string `parquet:"bu_group,snappy"`

	// ComponentsTotal is the number of components fetched in this run
	ComponentsTotal int32 `parquet:"components_total,snappy"`

	// ReleasesTotal is the number of releases fetched in this run
	ReleasesTotal int32 `parquet:"releases_total,snappy"`

	// ProjectsTotal is the number of projects fetched in this run
	ProjectsTotal int32 `parquet:"projects_total,snappy"`

	// OrphanedReleases is the number of dangling release references found
	OrphanedReleases int32 `parquet:"orphaned_releases,snappy"`

	// Pushed records whether the metric batch reached the gateway
	Pushed bool `parquet:"pushed,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// Ranking represents one top-N ranking entry of a collection run.
// This struct maps to the sw360_run_rankings database table.
type Ranking struct {
	// RunID references the parent collection run
	RunID int64 `parquet:"run_id,snappy"`

	// Kind is the ranking dimension, component_releases or release_projects
	Kind string `parquet:"kind,snappy"`

	// Rank is the 1-based position within the ranking
	Rank int32 `parquet:"rank_position,snappy"`

	// EntityID is the document id of the ranked entity
	EntityID string `parquet:"entity_id,snappy"`

	// Name is the display name of the ranked entity
	Name string `parquet:"entity_name,snappy"`

	// Detail is the component type or release version
	Detail string `parquet:"detail,snappy"`

	// Count is the ranked quantity, releases or project usages
	Count int32 `parquet:"entity_count,snappy"`
}

// WriteCollectionRunsParquet writes a slice of CollectionRun structs to a Parquet file.
func WriteCollectionRunsParquet(data []CollectionRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the CollectionRun struct tags
	writer := parquet.NewGenericWriter[CollectionRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteRankingsParquet writes a slice of Ranking structs to a Parquet file.
func WriteRankingsParquet(data []Ranking, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the Ranking struct tags
	writer := parquet.NewGenericWriter[Ranking](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertCollectionRunRecords converts schema.CollectionRunRecord to CollectionRun for Parquet export.
func ConvertCollectionRunRecords(records []schema.CollectionRunRecord) []CollectionRun {
	result := make([]CollectionRun, len(records))
	for i, record := range records {
		result[i] = CollectionRun{
			RunID:            record.RunID,
			StartTime:        record.StartTime,
			EndTime:          record.EndTime,
			RunDurationMs:    record.RunDurationMs,
			Job:              record.Job,
			Group:            record.Group,
			ComponentsTotal:  int32(record.ComponentsTotal),
			ReleasesTotal:    int32(record.ReleasesTotal),
			ProjectsTotal:    int32(record.ProjectsTotal),
			OrphanedReleases: int32(record.OrphanedReleases),
			Pushed:           record.Pushed,
			ConfigParams:     record.ConfigParams,
		}
	}
	return result
}

// ConvertRankingRecords converts schema.RankingRecord to Ranking for Parquet export.
func ConvertRankingRecords(records []schema.RankingRecord) []Ranking {
	result := make([]Ranking, len(records))
	for i, record := range records {
		result[i] = Ranking{
			RunID:    record.RunID,
			Kind:     record.Kind,
			Rank:     int32(record.Rank),
			EntityID: record.EntityID,
			Name:     record.Name,
			Detail:   record.Detail,
			Count:    int32(record.Count),
		}
	}
	return result
}
