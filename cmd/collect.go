package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sw360/sw360-dashboard/core"
	"github.com/sw360/sw360-dashboard/internal/contract"
	"github.com/sw360/sw360-dashboard/internal/couchstore"
	"github.com/sw360/sw360-dashboard/internal/push"
)

// collectCmd runs the full collection pipeline including the gateway push.
var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect catalog statistics and push them to the pushgateway.",
	Long: `Fetch all components, releases and projects from the SW360 CouchDB,
reconstruct their relationships, aggregate the statistics and push the full
metric batch to the Prometheus pushgateway in one shot.

The batch replaces the job's previous series on the gateway, so dashboards
always reflect exactly one collection run.

Examples:
  # Collect the full catalog and push
  sw360-dashboard collect --couchdb-url http://localhost:5984

  # Scope to one business unit; the job label follows the group
  sw360-dashboard collect --group DEPT

  # Verify the batch without touching the gateway
  sw360-dashboard collect --dry-run

  # Keep report files alongside the push
  sw360-dashboard collect --json-report stats.json --csv-report stats.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		src, err := couchstore.New(cfg)
		if err != nil {
			contract.LogFatal("Cannot connect to document store", err)
		}
		emitter := push.NewEmitter(cfg)
		if err := core.ExecuteCollect(rootCtx, cfg, src, emitter, runManager); err != nil {
			contract.LogFatal("Cannot run collection", err)
		}
	},
}
