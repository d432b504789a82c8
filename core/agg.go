package core

import (
	"time"

	"github.com/sw360/sw360-dashboard/schema"
)

// Aggregate computes the full derived statistics set over a reconstructed
// graph. It is a pure function of its inputs: running it twice on the same
// graph yields identical output, including slice ordering.
func Aggregate(g *Graph, generatedOn time.Time, group string) *schema.AggregateResult {
	agg := &schema.AggregateResult{
		GeneratedOn: generatedOn.UTC(),
		Group:       group,
		Totals: schema.Totals{
			Components: len(g.Components),
			Releases:   len(g.Releases),
			Projects:   len(g.Projects),
		},
		ComponentsByType:  make(map[string]int),
		ComponentsPerYear: make(map[int]int),
		ReleasesPerYear:   make(map[int]int),
		ProjectsPerYear:   make(map[int]int),
		DefectCount:       len(g.Defects),
	}

	for _, c := range g.Components {
		agg.ComponentsByType[c.Type]++
		if c.CreatedYear != 0 {
			agg.ComponentsPerYear[c.CreatedYear]++
		}
		if len(g.ReleasesByComponent[c.ID]) > 0 {
			agg.Summary.ComponentsWithReleases++
		} else {
			agg.Summary.ComponentsWithoutReleases++
			if len(agg.UnreleasedComponents) < schema.TopN {
				agg.UnreleasedComponents = append(agg.UnreleasedComponents, schema.UnreleasedComponent{
					ComponentID:   c.ID,
					ComponentName: c.Name,
					ComponentType: c.Type,
				})
			}
		}
	}

	for _, r := range g.Releases {
		if r.CreatedYear != 0 {
			agg.ReleasesPerYear[r.CreatedYear]++
		}
		if g.ProjectCountByRelease[r.ID] > 0 {
			agg.Summary.ReleasesWithProjects++
		} else {
			agg.Summary.ReleasesWithoutProjects++
		}
	}

	for _, p := range g.Projects {
		if p.CreatedYear != 0 {
			agg.ProjectsPerYear[p.CreatedYear]++
		}
	}

	agg.Summary.OrphanedReleases = len(g.Orphaned)
	for _, r := range g.Orphaned {
		componentID := r.ComponentID
		if componentID == "" {
			componentID = "Missing"
		}
		agg.OrphanedReleases = append(agg.OrphanedReleases, schema.OrphanedRelease{
			ReleaseID:      r.ID,
			ReleaseName:    r.Name,
			ReleaseVersion: r.Version,
			ComponentID:    componentID,
		})
	}

	agg.TopComponentsByReleases = rankComponentsByReleases(g)
	agg.TopReleasesByProjects = rankReleasesByProjects(g)

	return agg
}
