package core

import (
	"sort"

	"github.com/sw360/sw360-dashboard/schema"
)

// rankComponentsByReleases ranks components by descending release count.
// Ties break on component id ascending so identical inputs always produce
// the same ordering. The list truncates to the top 50.
func rankComponentsByReleases(g *Graph) []schema.ComponentRank {
	ranks := make([]schema.ComponentRank, 0, len(g.Components))
	for _, c := range g.Components {
		ranks = append(ranks, schema.ComponentRank{
			ComponentID:   c.ID,
			ComponentName: c.Name,
			ComponentType: c.Type,
			ReleaseCount:  len(g.ReleasesByComponent[c.ID]),
		})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].ReleaseCount != ranks[j].ReleaseCount {
			return ranks[i].ReleaseCount > ranks[j].ReleaseCount
		}
		return ranks[i].ComponentID < ranks[j].ComponentID
	})
	return truncateComponentRanks(ranks)
}

// rankReleasesByProjects ranks releases by descending project usage count
// with the same id-ascending tie-break and top-50 truncation.
func rankReleasesByProjects(g *Graph) []schema.ReleaseRank {
	ranks := make([]schema.ReleaseRank, 0, len(g.Releases))
	for _, r := range g.Releases {
		componentName := schema.UnknownValue
		if c, ok := g.ComponentByID[r.ComponentID]; ok {
			componentName = c.Name
		}
		ranks = append(ranks, schema.ReleaseRank{
			ReleaseID:      r.ID,
			ReleaseName:    r.Name,
			ReleaseVersion: r.Version,
			ComponentName:  componentName,
			ProjectCount:   g.ProjectCountByRelease[r.ID],
			Projects:       g.ProjectsByRelease[r.ID],
		})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].ProjectCount != ranks[j].ProjectCount {
			return ranks[i].ProjectCount > ranks[j].ProjectCount
		}
		return ranks[i].ReleaseID < ranks[j].ReleaseID
	})
	return truncateReleaseRanks(ranks)
}

func truncateComponentRanks(ranks []schema.ComponentRank) []schema.ComponentRank {
	if len(ranks) > schema.TopN {
		return ranks[:schema.TopN]
	}
	return ranks
}

func truncateReleaseRanks(ranks []schema.ReleaseRank) []schema.ReleaseRank {
	if len(ranks) > schema.TopN {
		return ranks[:schema.TopN]
	}
	return ranks
}
