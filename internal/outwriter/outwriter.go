// Package outwriter has console output and report writing logic.
package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/sw360/sw360-dashboard/internal/contract"
	"github.com/sw360/sw360-dashboard/schema"
)

// WriteAggregate outputs the aggregate result, dispatching based on the
// output format configured.
func WriteAggregate(agg *schema.AggregateResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeAggregateJSON(agg, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeAggregateCSV(agg, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable summary
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryText(agg, cfg, duration, w)
		}, "Wrote summary")
	}
	return nil
}

// writeAggregateJSON handles opening the file and calling the JSON writer.
func writeAggregateJSON(agg *schema.AggregateResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, agg)
	}, "Wrote JSON")
}

// writeAggregateCSV handles opening the file and calling the CSV writer.
func writeAggregateCSV(agg *schema.AggregateResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, aggregateCSVHeader, func(cw *csv.Writer) error {
			return writeAggregateCSVRows(cw, agg)
		})
	}, "Wrote CSV")
}

// writeSummaryText generates and writes the human-readable summary.
func writeSummaryText(agg *schema.AggregateResult, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	if _, err := contract.HeaderColor.Fprintf(writer, "📊 SW360 statistics (%s)\n", agg.GeneratedOn.Format(schema.CreatedOnFormat)); err != nil {
		return err
	}
	if agg.Group != "" {
		fmt.Fprintf(writer, "Scoped to business unit: %s\n", agg.Group)
	}
	fmt.Fprintf(writer, "Components: %d, Releases: %d, Projects: %d\n",
		agg.Totals.Components, agg.Totals.Releases, agg.Totals.Projects)
	fmt.Fprintf(writer, "Components with releases: %d (without: %d)\n",
		agg.Summary.ComponentsWithReleases, agg.Summary.ComponentsWithoutReleases)
	fmt.Fprintf(writer, "Releases used by projects: %d (unused: %d)\n",
		agg.Summary.ReleasesWithProjects, agg.Summary.ReleasesWithoutProjects)
	if agg.Summary.OrphanedReleases > 0 {
		contract.WarnColor.Fprintf(writer, "Orphaned releases: %d\n", agg.Summary.OrphanedReleases)
	}
	if agg.DefectCount > 0 {
		contract.WarnColor.Fprintf(writer, "Malformed document fields: %d\n", agg.DefectCount)
	}
	fmt.Fprintln(writer)

	limit := cfg.ResultLimit

	if _, err := contract.HeaderColor.Fprintln(writer, "Top components by release count"); err != nil {
		return err
	}
	if err := writeComponentTable(writer, agg.TopComponentsByReleases, limit); err != nil {
		return err
	}
	fmt.Fprintln(writer)

	if _, err := contract.HeaderColor.Fprintln(writer, "Top releases by project usage"); err != nil {
		return err
	}
	if err := writeReleaseTable(writer, agg.TopReleasesByProjects, limit); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Collection completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeComponentTable renders the component ranking as a table.
func writeComponentTable(writer io.Writer, ranks []schema.ComponentRank, limit int) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Component", "Type", "Releases"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth()
	var data [][]string
	for i, r := range capRanks(ranks, limit) {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(r.ComponentName, nameWidth),
			r.ComponentType,
			strconv.Itoa(r.ReleaseCount),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeReleaseTable renders the release ranking as a table.
func writeReleaseTable(writer io.Writer, ranks []schema.ReleaseRank, limit int) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Release", "Version", "Component", "Projects"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth()
	var data [][]string
	for i, r := range capRanks(ranks, limit) {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(r.ReleaseName, nameWidth),
			r.ReleaseVersion,
			contract.TruncateName(r.ComponentName, nameWidth),
			strconv.Itoa(r.ProjectCount),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// capRanks truncates a ranked slice to the display limit. Zero or negative
// means no cap.
func capRanks[T any](ranks []T, limit int) []T {
	if limit > 0 && len(ranks) > limit {
		return ranks[:limit]
	}
	return ranks
}

// sortedStringKeys returns map keys in ascending order for stable rows.
func sortedStringKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sortedIntKeys returns map keys in ascending order for stable rows.
func sortedIntKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
