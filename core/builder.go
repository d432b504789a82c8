package core

import (
	"github.com/sw360/sw360-dashboard/schema"
)

// Graph holds the normalized in-memory indexes reconstructed from the three
// entity sets. All relationship traversal is one-directional map lookup over
// the store's opaque id strings; no back-pointers are kept.
type Graph struct {
	Components []schema.Component // fetch order
	Releases   []schema.Release   // fetch order
	Projects   []schema.Project   // fetch order

	ComponentByID       map[string]schema.Component
	ReleasesByComponent map[string][]schema.Release // fetch order per component
	Orphaned            []schema.Release            // releases whose component reference dangles

	ProjectCountByRelease map[string]int
	ProjectsByRelease     map[string][]schema.ProjectRef

	Defects []schema.Defect
}

// BuildGraph normalizes the raw documents and reconstructs the bidirectional
// relationship graph. It is total: malformed documents degrade into defects,
// never errors.
//
// One pass over releases builds ReleasesByComponent and flags orphans; one
// pass over projects attributes usage counts. A project referencing a
// release id that is not in the release set is skipped without attribution.
// Duplicate references within one project cannot double-count because the
// normalized reference list is already distinct.
func BuildGraph(components []schema.ComponentDoc, releases []schema.ReleaseDoc, projects []schema.ProjectDoc) *Graph {
	g := &Graph{
		ComponentByID:         make(map[string]schema.Component, len(components)),
		ReleasesByComponent:   make(map[string][]schema.Release),
		ProjectCountByRelease: make(map[string]int),
		ProjectsByRelease:     make(map[string][]schema.ProjectRef),
	}

	g.Components = make([]schema.Component, 0, len(components))
	for _, doc := range components {
		c, defects := schema.NormalizeComponent(doc)
		g.Defects = append(g.Defects, defects...)
		g.Components = append(g.Components, c)
		g.ComponentByID[c.ID] = c
	}

	g.Releases = make([]schema.Release, 0, len(releases))
	releaseIDs := make(map[string]struct{}, len(releases))
	for _, doc := range releases {
		r, defects := schema.NormalizeRelease(doc)
		g.Defects = append(g.Defects, defects...)
		g.Releases = append(g.Releases, r)
		releaseIDs[r.ID] = struct{}{}

		if _, ok := g.ComponentByID[r.ComponentID]; r.ComponentID != "" && ok {
			g.ReleasesByComponent[r.ComponentID] = append(g.ReleasesByComponent[r.ComponentID], r)
		} else {
			g.Orphaned = append(g.Orphaned, r)
		}
	}

	g.Projects = make([]schema.Project, 0, len(projects))
	for _, doc := range projects {
		p, defects := schema.NormalizeProject(doc)
		g.Defects = append(g.Defects, defects...)
		g.Projects = append(g.Projects, p)

		for _, releaseID := range p.ReleaseIDs {
			if _, known := releaseIDs[releaseID]; !known {
				// Dangling project reference: usage is not attributed
				// to any known release.
				continue
			}
			g.ProjectCountByRelease[releaseID]++
			g.ProjectsByRelease[releaseID] = append(g.ProjectsByRelease[releaseID], schema.ProjectRef{
				ProjectID:   p.ID,
				ProjectName: p.Name,
			})
		}
	}

	return g
}

// ScopeToGroup restricts the raw document sets to one business unit before
// the graph is built: projects of the group, then the releases those
// projects use, then the components those releases belong to. An empty group
// returns the inputs unchanged.
func ScopeToGroup(components []schema.ComponentDoc, releases []schema.ReleaseDoc, projects []schema.ProjectDoc, group string) ([]schema.ComponentDoc, []schema.ReleaseDoc, []schema.ProjectDoc) {
	if group == "" {
		return components, releases, projects
	}

	scopedProjects := make([]schema.ProjectDoc, 0)
	usedReleaseIDs := make(map[string]struct{})
	for _, p := range projects {
		if p.BusinessUnit != group {
			continue
		}
		scopedProjects = append(scopedProjects, p)
		for id := range p.ReleaseIDToUsage {
			usedReleaseIDs[id] = struct{}{}
		}
	}

	scopedReleases := make([]schema.ReleaseDoc, 0)
	usedComponentIDs := make(map[string]struct{})
	for _, r := range releases {
		if _, ok := usedReleaseIDs[r.ID]; !ok {
			continue
		}
		scopedReleases = append(scopedReleases, r)
		if r.ComponentID != "" {
			usedComponentIDs[r.ComponentID] = struct{}{}
		}
	}

	scopedComponents := make([]schema.ComponentDoc, 0)
	for _, c := range components {
		if _, ok := usedComponentIDs[c.ID]; ok {
			scopedComponents = append(scopedComponents, c)
		}
	}

	return scopedComponents, scopedReleases, scopedProjects
}
