// Package core has the collection pipeline: fetch, build, aggregate, emit.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/sw360/sw360-dashboard/internal/contract"
	"github.com/sw360/sw360-dashboard/internal/outwriter"
	"github.com/sw360/sw360-dashboard/schema"
)

// CollectAggregate runs the read side of the pipeline: fetch all three
// entity sets, scope them to the configured group, reconstruct the graph
// and aggregate. A fetch failure aborts before any aggregate exists, so
// nothing downstream can act on a partially fetched entity set.
func CollectAggregate(ctx context.Context, cfg *contract.Config, src contract.DocumentSource) (*schema.AggregateResult, error) {
	progressf(ctx, "📦 Fetching all components...\n")
	components, err := src.FetchComponents(ctx)
	if err != nil {
		return nil, err
	}
	progressf(ctx, "   Retrieved %d components\n", len(components))

	progressf(ctx, "📦 Fetching all releases...\n")
	releases, err := src.FetchReleases(ctx)
	if err != nil {
		return nil, err
	}
	progressf(ctx, "   Retrieved %d releases\n", len(releases))

	progressf(ctx, "📦 Fetching all projects...\n")
	projects, err := src.FetchProjects(ctx)
	if err != nil {
		return nil, err
	}
	progressf(ctx, "   Retrieved %d projects\n", len(projects))

	if cfg.Group != "" {
		components, releases, projects = ScopeToGroup(components, releases, projects, cfg.Group)
		progressf(ctx, "🔎 Scoped to group %q: %d components, %d releases, %d projects\n",
			cfg.Group, len(components), len(releases), len(projects))
	}

	g := BuildGraph(components, releases, projects)
	for _, d := range g.Defects {
		contract.LogWarn(fmt.Sprintf("malformed %s document %s field %s", d.Entity, d.ID, d.Field), fmt.Errorf("%s", d.Reason))
	}

	return Aggregate(g, time.Now(), cfg.Group), nil
}

// ExecuteCollect runs the full pipeline: fetch, build, aggregate, push,
// write reports, record the run. It is the entry point for the 'collect'
// command. A failed push still writes configured report files so the run's
// data is not lost, then the error propagates for a non-zero exit.
func ExecuteCollect(ctx context.Context, cfg *contract.Config, src contract.DocumentSource, emitter contract.MetricEmitter, mgr contract.RunManager) error {
	start := time.Now()
	store := mgr.GetRunStore()

	runID, err := store.BeginRun(start, runParams(cfg))
	if err != nil {
		contract.LogWarn("could not record run start", err)
	}

	agg, err := CollectAggregate(ctx, cfg, src)
	if err != nil {
		return err
	}

	pushed := false
	if cfg.DryRun {
		rendered, err := emitter.Render(agg)
		if err != nil {
			return err
		}
		fmt.Println("🧪 Dry run: rendered metric batch, nothing pushed")
		fmt.Print(rendered)
	} else {
		if err := emitter.Push(ctx, agg); err != nil {
			// Keep the aggregate by falling back to the report files
			// before failing the run.
			writeReports(agg, cfg)
			return err
		}
		pushed = true
		fmt.Printf("🚀 Pushed metric batch for job %q to %s\n", cfg.Job, cfg.GatewayURL)
	}

	writeReports(agg, cfg)

	if err := outwriter.WriteAggregate(agg, cfg, time.Since(start)); err != nil {
		return err
	}

	finishRun(store, runID, agg, pushed)
	return nil
}

// ExecuteReport runs the pipeline without the metrics gateway: fetch,
// build, aggregate, write reports and print the summary. It is the entry
// point for the 'report' command.
func ExecuteReport(ctx context.Context, cfg *contract.Config, src contract.DocumentSource, mgr contract.RunManager) error {
	start := time.Now()
	store := mgr.GetRunStore()

	runID, err := store.BeginRun(start, runParams(cfg))
	if err != nil {
		contract.LogWarn("could not record run start", err)
	}

	agg, err := CollectAggregate(ctx, cfg, src)
	if err != nil {
		return err
	}

	writeReports(agg, cfg)

	if err := outwriter.WriteAggregate(agg, cfg, time.Since(start)); err != nil {
		return err
	}

	finishRun(store, runID, agg, false)
	return nil
}

// writeReports writes the configured report files. Report failures are
// logged and never block the rest of the run; the metric and file sinks
// are independent.
func writeReports(agg *schema.AggregateResult, cfg *contract.Config) {
	if cfg.JSONReport != "" {
		if err := outwriter.WriteJSONReport(agg, cfg.JSONReport); err != nil {
			contract.LogWarn("json report", err)
		} else {
			fmt.Printf("💾 JSON report saved to %s\n", cfg.JSONReport)
		}
	}
	if cfg.CSVReport != "" {
		if err := outwriter.WriteCSVReport(agg, cfg.CSVReport); err != nil {
			contract.LogWarn("csv report", err)
		} else {
			fmt.Printf("💾 CSV report saved to %s\n", cfg.CSVReport)
		}
	}
}

// finishRun records run completion and rankings, warning on store errors.
func finishRun(store contract.RunStore, runID int64, agg *schema.AggregateResult, pushed bool) {
	if err := store.EndRun(runID, time.Now(), agg, pushed); err != nil {
		contract.LogWarn("could not record run completion", err)
	}
	if err := store.RecordRankings(runID, agg); err != nil {
		contract.LogWarn("could not record run rankings", err)
	}
}

// runParams captures the run configuration persisted with each run record.
func runParams(cfg *contract.Config) map[string]any {
	return map[string]any{
		"database":  cfg.Database,
		"group":     cfg.Group,
		"job":       cfg.Job,
		"dry_run":   cfg.DryRun,
		"page_size": cfg.PageSize,
	}
}
