package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sw360/sw360-dashboard/internal/contract"
	"github.com/sw360/sw360-dashboard/schema"
)

func sampleAggregate() *schema.AggregateResult {
	return &schema.AggregateResult{
		GeneratedOn: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
		Totals:      schema.Totals{Components: 3, Releases: 4, Projects: 2},
		Summary: schema.RelationshipSummary{
			ComponentsWithReleases:    2,
			ComponentsWithoutReleases: 1,
			ReleasesWithProjects:      3,
			ReleasesWithoutProjects:   1,
			OrphanedReleases:          1,
		},
		ComponentsByType:  map[string]int{"OSS": 2, "COTS": 1},
		ComponentsPerYear: map[int]int{2023: 1, 2024: 2},
		ReleasesPerYear:   map[int]int{2024: 4},
		ProjectsPerYear:   map[int]int{2025: 2},
		TopComponentsByReleases: []schema.ComponentRank{
			{ComponentID: "c1", ComponentName: "zlib", ComponentType: "OSS", ReleaseCount: 3},
			{ComponentID: "c2", ComponentName: "curl", ComponentType: "OSS", ReleaseCount: 1},
		},
		TopReleasesByProjects: []schema.ReleaseRank{
			{ReleaseID: "r1", ReleaseName: "zlib", ReleaseVersion: "1.3", ComponentName: "zlib", ProjectCount: 2},
		},
		UnreleasedComponents: []schema.UnreleasedComponent{
			{ComponentID: "c3", ComponentName: "lonely", ComponentType: "COTS"},
		},
		OrphanedReleases: []schema.OrphanedRelease{
			{ReleaseID: "r9", ReleaseName: "ghost", ReleaseVersion: "0.1", ComponentID: "Missing"},
		},
		DefectCount: 2,
	}
}

func TestWriteAggregateJSONFile(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "out.json")
	cfg := &contract.Config{Output: schema.JSONOut, OutputFile: outFile}

	err := WriteAggregate(sampleAggregate(), cfg, time.Second)
	require.NoError(t, err)

	raw, err := os.ReadFile(outFile)
	require.NoError(t, err)

	var decoded schema.AggregateResult
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, 3, decoded.Totals.Components)
	assert.Len(t, decoded.TopComponentsByReleases, 2)
}

func TestWriteAggregateCSVFile(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "out.csv")
	cfg := &contract.Config{Output: schema.CSVOut, OutputFile: outFile}

	err := WriteAggregate(sampleAggregate(), cfg, time.Second)
	require.NoError(t, err)

	file, err := os.Open(outFile)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, aggregateCSVHeader, records[0])

	sections := make(map[string]int)
	for _, rec := range records[1:] {
		require.Len(t, rec, len(aggregateCSVHeader))
		sections[rec[0]]++
	}
	assert.Equal(t, 3, sections["totals"])
	assert.Equal(t, 2, sections["components_by_type"])
	assert.Equal(t, 2, sections["top_components"])
	assert.Equal(t, 1, sections["orphaned_releases"])
}

func TestWriteAggregateTextFile(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "out.txt")
	cfg := &contract.Config{Output: schema.TextOut, OutputFile: outFile, ResultLimit: 1}

	err := WriteAggregate(sampleAggregate(), cfg, time.Second)
	require.NoError(t, err)

	raw, err := os.ReadFile(outFile)
	require.NoError(t, err)
	text := string(raw)

	assert.Contains(t, text, "Components: 3, Releases: 4, Projects: 2")
	assert.Contains(t, text, "Top components by release count")
	assert.Contains(t, text, "zlib")
	// ResultLimit caps the table at one row
	assert.NotContains(t, text, "curl")
}

func TestWriteJSONReportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	agg := sampleAggregate()

	require.NoError(t, WriteJSONReport(agg, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded schema.AggregateResult
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, agg.Summary, decoded.Summary)
	assert.Equal(t, agg.OrphanedReleases, decoded.OrphanedReleases)
}

func TestWriteJSONReportDeterministic(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.json")
	second := filepath.Join(dir, "b.json")
	agg := sampleAggregate()

	require.NoError(t, WriteJSONReport(agg, first))
	require.NoError(t, WriteJSONReport(agg, second))

	rawFirst, err := os.ReadFile(first)
	require.NoError(t, err)
	rawSecond, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, rawFirst, rawSecond)
}

func TestWriteCSVReportLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.csv")

	require.NoError(t, WriteCSVReport(sampleAggregate(), path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "report.csv", entries[0].Name())
}

func TestWriteJSONReportBadDirectory(t *testing.T) {
	err := WriteJSONReport(sampleAggregate(), filepath.Join(t.TempDir(), "missing", "report.json"))
	require.Error(t, err)

	var reportErr *contract.ReportWriteFailedError
	require.ErrorAs(t, err, &reportErr)
	assert.True(t, strings.HasSuffix(reportErr.Path, "report.json"))
}
