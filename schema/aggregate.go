package schema

import "time"

// Totals holds the raw post-fetch entity counts.
type Totals struct {
	Components int `json:"components"`
	Releases   int `json:"releases"`
	Projects   int `json:"projects"`
}

// RelationshipSummary summarizes the reconstructed component/release/project
// graph. The usage split is a partition: ReleasesWithProjects +
// ReleasesWithoutProjects always equals the release total. OrphanedReleases is
// an orthogonal count; a release can be both orphaned and unused.
type RelationshipSummary struct {
	ComponentsWithReleases    int `json:"components_with_releases"`
	ComponentsWithoutReleases int `json:"components_without_releases"`
	ReleasesWithProjects      int `json:"releases_with_projects"`
	ReleasesWithoutProjects   int `json:"releases_without_projects"`
	OrphanedReleases          int `json:"orphaned_releases"`
}

// ComponentRank is one entry in the components-by-release-count ranking.
type ComponentRank struct {
	ComponentID   string `json:"component_id"`
	ComponentName string `json:"component_name"`
	ComponentType string `json:"component_type"`
	ReleaseCount  int    `json:"release_count"`
}

// ReleaseRank is one entry in the releases-by-project-usage ranking.
type ReleaseRank struct {
	ReleaseID      string       `json:"release_id"`
	ReleaseName    string       `json:"release_name"`
	ReleaseVersion string       `json:"release_version"`
	ComponentName  string       `json:"component_name"`
	ProjectCount   int          `json:"project_count"`
	Projects       []ProjectRef `json:"projects,omitempty"`
}

// UnreleasedComponent is one entry in the unreleased-components enumeration.
// The list keeps fetch order on purpose; it enumerates, it does not rank.
type UnreleasedComponent struct {
	ComponentID   string `json:"component_id"`
	ComponentName string `json:"component_name"`
	ComponentType string `json:"component_type"`
}

// OrphanedRelease is one release whose component reference dangles.
type OrphanedRelease struct {
	ReleaseID      string `json:"release_id"`
	ReleaseName    string `json:"release_name"`
	ReleaseVersion string `json:"release_version"`
	ComponentID    string `json:"component_id"`
}

// AggregateResult is the full derived statistics set for one collection run.
// It is built fresh per run, handed to the metric emitter and report writers,
// and then discarded. Year histograms are sparse: years with zero entities are
// simply absent. All slices are deterministically ordered, so marshaling the
// same input twice yields byte-identical output.
type AggregateResult struct {
	GeneratedOn time.Time `json:"generated_on"`
	Group       string    `json:"group,omitempty"`

	Totals  Totals              `json:"totals"`
	Summary RelationshipSummary `json:"summary"`

	ComponentsByType map[string]int `json:"components_by_type"`

	ComponentsPerYear map[int]int `json:"components_created_per_year"`
	ReleasesPerYear   map[int]int `json:"releases_created_per_year"`
	ProjectsPerYear   map[int]int `json:"projects_created_per_year"`

	TopComponentsByReleases []ComponentRank       `json:"top_components_by_releases"`
	TopReleasesByProjects   []ReleaseRank         `json:"top_releases_by_projects"`
	UnreleasedComponents    []UnreleasedComponent `json:"unreleased_components"`
	OrphanedReleases        []OrphanedRelease     `json:"orphaned_releases"`

	DefectCount int `json:"defect_count"`
}
