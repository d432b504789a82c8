// Package schema has configs, models and shared types for all parts of sw360-dashboard.
package schema

import "time"

// ComponentDoc is the raw CouchDB document for an SW360 component.
// Only the fields the collector consumes are mapped; everything else in the
// document is ignored on decode.
type ComponentDoc struct {
	ID            string `json:"_id"`
	Type          string `json:"type"`
	Name          string `json:"name"`
	ComponentType string `json:"componentType"`
	CreatedOn     string `json:"createdOn"`
	CreatedBy     string `json:"createdBy"`
}

// ReleaseDoc is the raw CouchDB document for an SW360 release.
type ReleaseDoc struct {
	ID          string `json:"_id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Version     string `json:"version"`
	ComponentID string `json:"componentId"`
	CreatedOn   string `json:"createdOn"`
	CreatedBy   string `json:"createdBy"`
}

// ProjectDoc is the raw CouchDB document for an SW360 project.
// ReleaseIDToUsage is keyed by release id; the usage payload itself carries no
// information the collector needs, so values are discarded on decode.
type ProjectDoc struct {
	ID               string         `json:"_id"`
	Type             string         `json:"type"`
	Name             string         `json:"name"`
	BusinessUnit     string         `json:"businessUnit"`
	CreatedOn        string         `json:"createdOn"`
	ReleaseIDToUsage map[string]any `json:"releaseIdToUsage"`
}

// Component is a validated component record derived from ComponentDoc.
// Missing or unrecognized fields are degraded to their unknown values rather
// than rejected, so the aggregation loop stays total.
type Component struct {
	ID          string `json:"component_id"`
	Name        string `json:"component_name"`
	Type        string `json:"component_type"`
	CreatedOn   string `json:"component_created_on"`
	CreatedBy   string `json:"component_created_by"`
	CreatedYear int    `json:"-"` // 0 when the creation date is missing or malformed
}

// Release is a validated release record derived from ReleaseDoc.
type Release struct {
	ID          string `json:"release_id"`
	Name        string `json:"release_name"`
	Version     string `json:"release_version"`
	ComponentID string `json:"component_id"`
	CreatedOn   string `json:"release_created_on"`
	CreatedBy   string `json:"release_created_by"`
	CreatedYear int    `json:"-"`
}

// Project is a validated project record derived from ProjectDoc.
type Project struct {
	ID           string   `json:"project_id"`
	Name         string   `json:"project_name"`
	BusinessUnit string   `json:"business_unit,omitempty"`
	CreatedYear  int      `json:"-"`
	ReleaseIDs   []string `json:"-"` // distinct referenced release ids, sorted
}

// ProjectRef names a single project that uses a release.
type ProjectRef struct {
	ProjectID   string `json:"project_id"`
	ProjectName string `json:"project_name"`
}

// Defect records a per-document data quality issue that was degraded rather
// than raised. Defects never abort a run; they are logged and counted.
type Defect struct {
	Entity string // entity kind: component, release, project
	ID     string // document id, may be empty for broken documents
	Field  string
	Reason string
}

// CollectionRunRecord is one persisted collection run from the run store.
type CollectionRunRecord struct {
	RunID            int64
	StartTime        time.Time
	EndTime          *time.Time
	RunDurationMs    *int64
	Job              string
	Group            string
	ComponentsTotal  int
	ReleasesTotal    int
	ProjectsTotal    int
	OrphanedReleases int
	Pushed           bool
	ConfigParams     *string
}

// RankingRecord is one persisted top-N ranking entry from the run store.
type RankingRecord struct {
	RunID    int64
	Kind     string // "component_releases" or "release_projects"
	Rank     int
	EntityID string
	Name     string
	Detail   string // component type or release version
	Count    int
}
