// Package push implements the metric emitter against a Prometheus
// pushgateway.
//
// Each run builds its own registry so no collector state leaks between
// runs, then pushes the gathered batch in one request under a single job
// label with an instance=latest grouping key. The gateway replaces the
// job's series atomically, so a dashboard never sees a half-updated run.
package push

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/prometheus/common/expfmt"

	"github.com/sw360/sw360-dashboard/internal/contract"
	"github.com/sw360/sw360-dashboard/schema"
)

// Emitter pushes aggregate results to the pushgateway.
type Emitter struct {
	url     string
	job     string
	timeout time.Duration
}

var _ contract.MetricEmitter = &Emitter{} // Compile-time check

// NewEmitter creates an emitter bound to the configured gateway and job.
func NewEmitter(cfg *contract.Config) *Emitter {
	return &Emitter{
		url:     cfg.GatewayURL,
		job:     cfg.Job,
		timeout: cfg.PushTimeout,
	}
}

// Push implements the MetricEmitter interface. The previous series for the
// job are deleted first so stale labeled series (e.g. a component that
// dropped out of the top 50) do not linger on the gateway.
func (e *Emitter) Push(ctx context.Context, agg *schema.AggregateResult) error {
	reg := BuildRegistry(agg)
	pusher := push.New(e.url, e.job).
		Gatherer(reg).
		Grouping("instance", "latest").
		Client(&http.Client{Timeout: e.timeout})

	if err := pusher.Delete(); err != nil {
		contract.LogWarn("could not delete previous job series", err)
	}
	if err := pusher.PushContext(ctx); err != nil {
		return &contract.PushFailedError{Job: e.job, Err: err}
	}
	return nil
}

// Render implements the MetricEmitter interface. It returns the batch in
// text exposition format for dry-run verification without side effects.
func (e *Emitter) Render(agg *schema.AggregateResult) (string, error) {
	reg := BuildRegistry(agg)
	families, err := reg.Gather()
	if err != nil {
		return "", fmt.Errorf("could not gather metric batch: %w", err)
	}
	var buf bytes.Buffer
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return "", fmt.Errorf("could not render metric batch: %w", err)
		}
	}
	return buf.String(), nil
}

// BuildRegistry maps an aggregate result onto the fixed metric vocabulary
// in a fresh registry. Metric names are stable across runs; only label
// values vary.
func BuildRegistry(agg *schema.AggregateResult) *prometheus.Registry {
	reg := prometheus.NewRegistry()

	newGauge := func(name, help string, value float64) {
		g := prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
		g.Set(value)
		reg.MustRegister(g)
	}

	newGauge("sw360_components_total", "Total number of components", float64(agg.Totals.Components))
	newGauge("sw360_releases_total", "Total number of releases", float64(agg.Totals.Releases))
	newGauge("sw360_projects_total", "Total number of projects", float64(agg.Totals.Projects))
	newGauge("sw360_components_with_releases", "Number of components with at least one release", float64(agg.Summary.ComponentsWithReleases))
	newGauge("sw360_components_without_releases", "Number of components with zero releases", float64(agg.Summary.ComponentsWithoutReleases))
	newGauge("sw360_releases_with_projects", "Number of releases used by at least one project", float64(agg.Summary.ReleasesWithProjects))
	newGauge("sw360_releases_without_projects", "Number of releases used by zero projects", float64(agg.Summary.ReleasesWithoutProjects))
	newGauge("sw360_orphaned_releases", "Number of releases whose component reference dangles", float64(agg.Summary.OrphanedReleases))
	newGauge("sw360_malformed_documents", "Number of document fields degraded during normalization", float64(agg.DefectCount))

	componentsByType := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "sw360_components_by_type", Help: "Number of components per component type"},
		[]string{"type"})
	reg.MustRegister(componentsByType)
	for componentType, count := range agg.ComponentsByType {
		componentsByType.WithLabelValues(componentType).Set(float64(count))
	}

	componentReleases := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "sw360_component_release_count", Help: "Release count of the most released components"},
		[]string{"component_id", "component_name", "component_type"})
	reg.MustRegister(componentReleases)
	for _, rank := range agg.TopComponentsByReleases {
		componentReleases.WithLabelValues(rank.ComponentID, rank.ComponentName, rank.ComponentType).Set(float64(rank.ReleaseCount))
	}

	releaseProjects := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "sw360_release_project_count", Help: "Project usage count of the most used releases"},
		[]string{"release_id", "release_name", "release_version", "component_name"})
	reg.MustRegister(releaseProjects)
	for _, rank := range agg.TopReleasesByProjects {
		releaseProjects.WithLabelValues(rank.ReleaseID, rank.ReleaseName, rank.ReleaseVersion, rank.ComponentName).Set(float64(rank.ProjectCount))
	}

	registerYearVec(reg, "sw360_components_created_per_year", "Number of components created per year", agg.ComponentsPerYear)
	registerYearVec(reg, "sw360_releases_created_per_year", "Number of releases created per year", agg.ReleasesPerYear)
	registerYearVec(reg, "sw360_projects_created_per_year", "Number of projects created per year", agg.ProjectsPerYear)

	return reg
}

// registerYearVec registers one sparse per-year histogram as a labeled
// gauge. Years with zero entities have no series.
func registerYearVec(reg *prometheus.Registry, name, help string, perYear map[int]int) {
	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: name, Help: help}, []string{"year"})
	reg.MustRegister(vec)
	for year, count := range perYear {
		vec.WithLabelValues(strconv.Itoa(year)).Set(float64(count))
	}
}
