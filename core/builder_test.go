package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sw360/sw360-dashboard/schema"
)

func sampleDocs() ([]schema.ComponentDoc, []schema.ReleaseDoc, []schema.ProjectDoc) {
	components := []schema.ComponentDoc{
		{ID: "c1", Name: "zlib", ComponentType: "OSS", CreatedOn: "2019-03-01"},
		{ID: "c2", Name: "curl", ComponentType: "OSS", CreatedOn: "2020-07-11"},
		{ID: "c3", Name: "internal-lib", ComponentType: "INTERNAL", CreatedOn: "2020-01-05"},
	}
	releases := []schema.ReleaseDoc{
		{ID: "r1", Name: "zlib", Version: "1.2.13", ComponentID: "c1", CreatedOn: "2022-11-20"},
		{ID: "r2", Name: "zlib", Version: "1.3.0", ComponentID: "c1", CreatedOn: "2023-08-18"},
		{ID: "r3", Name: "curl", Version: "8.1.0", ComponentID: "c2", CreatedOn: "2023-05-17"},
		{ID: "r4", Name: "ghost", Version: "0.1.0", ComponentID: "deleted", CreatedOn: "2021-01-01"},
		{ID: "r5", Name: "loose", Version: "2.0.0", CreatedOn: "2021-02-02"},
	}
	projects := []schema.ProjectDoc{
		{ID: "p1", Name: "Dashboard", BusinessUnit: "DEPT-A", CreatedOn: "2022-01-10",
			ReleaseIDToUsage: map[string]any{"r1": nil, "r3": nil}},
		{ID: "p2", Name: "Portal", BusinessUnit: "DEPT-B", CreatedOn: "2023-02-14",
			ReleaseIDToUsage: map[string]any{"r1": nil, "gone": nil}},
	}
	return components, releases, projects
}

func TestBuildGraph(t *testing.T) {
	components, releases, projects := sampleDocs()
	g := BuildGraph(components, releases, projects)

	t.Run("releases group under their component", func(t *testing.T) {
		assert.Len(t, g.ReleasesByComponent["c1"], 2)
		assert.Len(t, g.ReleasesByComponent["c2"], 1)
		assert.Empty(t, g.ReleasesByComponent["c3"])
	})

	t.Run("dangling and missing component references are orphans", func(t *testing.T) {
		ids := make([]string, 0, len(g.Orphaned))
		for _, r := range g.Orphaned {
			ids = append(ids, r.ID)
		}
		assert.Equal(t, []string{"r4", "r5"}, ids)
	})

	t.Run("project usage attributes to known releases only", func(t *testing.T) {
		assert.Equal(t, 2, g.ProjectCountByRelease["r1"])
		assert.Equal(t, 1, g.ProjectCountByRelease["r3"])
		assert.Equal(t, 0, g.ProjectCountByRelease["gone"])
		assert.Equal(t, "p1", g.ProjectsByRelease["r1"][0].ProjectID)
		assert.Equal(t, "p2", g.ProjectsByRelease["r1"][1].ProjectID)
	})

	t.Run("well formed documents produce no defects", func(t *testing.T) {
		assert.Empty(t, g.Defects)
	})
}

func TestBuildGraphDuplicateReferenceCountsOnce(t *testing.T) {
	// Two map keys cannot collide, so a duplicate can only come in as
	// distinct ids; one project referencing one release counts once.
	releases := []schema.ReleaseDoc{{ID: "r1", Name: "zlib", Version: "1.0", ComponentID: "c1"}}
	components := []schema.ComponentDoc{{ID: "c1", Name: "zlib", ComponentType: "OSS"}}
	projects := []schema.ProjectDoc{
		{ID: "p1", Name: "Dashboard", ReleaseIDToUsage: map[string]any{"r1": nil}},
	}
	g := BuildGraph(components, releases, projects)
	assert.Equal(t, 1, g.ProjectCountByRelease["r1"])
	assert.Len(t, g.ProjectsByRelease["r1"], 1)
}

func TestBuildGraphEmptyInputs(t *testing.T) {
	g := BuildGraph(nil, nil, nil)
	assert.Empty(t, g.Components)
	assert.Empty(t, g.Releases)
	assert.Empty(t, g.Projects)
	assert.Empty(t, g.Orphaned)
	assert.Empty(t, g.Defects)
}

func TestBuildGraphMalformedDocumentsDegrade(t *testing.T) {
	components := []schema.ComponentDoc{{ID: "c1", CreatedOn: "bad-date"}}
	g := BuildGraph(components, nil, nil)
	assert.Len(t, g.Components, 1)
	assert.Equal(t, schema.UnknownValue, g.Components[0].Name)
	// name, componentType and createdOn each degrade separately
	assert.Len(t, g.Defects, 3)
}

func TestScopeToGroup(t *testing.T) {
	components, releases, projects := sampleDocs()

	t.Run("empty group keeps everything", func(t *testing.T) {
		c, r, p := ScopeToGroup(components, releases, projects, "")
		assert.Len(t, c, 3)
		assert.Len(t, r, 5)
		assert.Len(t, p, 2)
	})

	t.Run("group restricts to reachable entities", func(t *testing.T) {
		c, r, p := ScopeToGroup(components, releases, projects, "DEPT-B")
		assert.Len(t, p, 1)
		assert.Equal(t, "p2", p[0].ID)
		// p2 uses r1 and a dangling id; only r1 survives
		assert.Len(t, r, 1)
		assert.Equal(t, "r1", r[0].ID)
		assert.Len(t, c, 1)
		assert.Equal(t, "c1", c[0].ID)
	})

	t.Run("unknown group yields empty sets", func(t *testing.T) {
		c, r, p := ScopeToGroup(components, releases, projects, "NOPE")
		assert.Empty(t, c)
		assert.Empty(t, r)
		assert.Empty(t, p)
	})
}
