package outwriter

import (
	"encoding/csv"
	"strconv"

	"github.com/sw360/sw360-dashboard/schema"
)

// aggregateCSVHeader is the flat row layout shared by CSV console output
// and the CSV report file. Each row belongs to one section; columns that
// do not apply to a section stay empty.
var aggregateCSVHeader = []string{
	"section",
	"rank",
	"id",
	"name",
	"version",
	"component",
	"count",
}

// writeAggregateCSVRows flattens the aggregate result into section rows.
// Map-backed sections are emitted in ascending key order so repeated runs
// over the same input produce identical files.
func writeAggregateCSVRows(w *csv.Writer, agg *schema.AggregateResult) error {
	rows := [][]string{
		{"totals", "", "", "components", "", "", strconv.Itoa(agg.Totals.Components)},
		{"totals", "", "", "releases", "", "", strconv.Itoa(agg.Totals.Releases)},
		{"totals", "", "", "projects", "", "", strconv.Itoa(agg.Totals.Projects)},
		{"summary", "", "", "components_with_releases", "", "", strconv.Itoa(agg.Summary.ComponentsWithReleases)},
		{"summary", "", "", "components_without_releases", "", "", strconv.Itoa(agg.Summary.ComponentsWithoutReleases)},
		{"summary", "", "", "releases_with_projects", "", "", strconv.Itoa(agg.Summary.ReleasesWithProjects)},
		{"summary", "", "", "releases_without_projects", "", "", strconv.Itoa(agg.Summary.ReleasesWithoutProjects)},
		{"summary", "", "", "orphaned_releases", "", "", strconv.Itoa(agg.Summary.OrphanedReleases)},
		{"summary", "", "", "malformed_fields", "", "", strconv.Itoa(agg.DefectCount)},
	}

	for _, componentType := range sortedStringKeys(agg.ComponentsByType) {
		rows = append(rows, []string{
			"components_by_type", "", "", componentType, "", "",
			strconv.Itoa(agg.ComponentsByType[componentType]),
		})
	}

	rows = append(rows, yearRows("components_per_year", agg.ComponentsPerYear)...)
	rows = append(rows, yearRows("releases_per_year", agg.ReleasesPerYear)...)
	rows = append(rows, yearRows("projects_per_year", agg.ProjectsPerYear)...)

	for i, r := range agg.TopComponentsByReleases {
		rows = append(rows, []string{
			"top_components", strconv.Itoa(i + 1), r.ComponentID,
			r.ComponentName, "", r.ComponentType, strconv.Itoa(r.ReleaseCount),
		})
	}
	for i, r := range agg.TopReleasesByProjects {
		rows = append(rows, []string{
			"top_releases", strconv.Itoa(i + 1), r.ReleaseID,
			r.ReleaseName, r.ReleaseVersion, r.ComponentName, strconv.Itoa(r.ProjectCount),
		})
	}
	for _, c := range agg.UnreleasedComponents {
		rows = append(rows, []string{
			"unreleased_components", "", c.ComponentID,
			c.ComponentName, "", c.ComponentType, "0",
		})
	}
	for _, r := range agg.OrphanedReleases {
		rows = append(rows, []string{
			"orphaned_releases", "", r.ReleaseID,
			r.ReleaseName, r.ReleaseVersion, r.ComponentID, "",
		})
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// yearRows emits one row per year in ascending order.
func yearRows(section string, perYear map[int]int) [][]string {
	rows := make([][]string, 0, len(perYear))
	for _, year := range sortedIntKeys(perYear) {
		rows = append(rows, []string{
			section, "", "", strconv.Itoa(year), "", "",
			strconv.Itoa(perYear[year]),
		})
	}
	return rows
}
