package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sw360/sw360-dashboard/core"
	"github.com/sw360/sw360-dashboard/internal/contract"
	"github.com/sw360/sw360-dashboard/internal/couchstore"
)

// reportCmd runs the collection pipeline without the gateway push.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Collect catalog statistics and write reports without pushing.",
	Long: `Fetch and aggregate the catalog exactly like collect, but skip the
pushgateway entirely. Useful on hosts with no gateway access and for
producing report files on a schedule.

Examples:
  # Print the summary table
  sw360-dashboard report

  # Write the full statistics set to files
  sw360-dashboard report --json-report stats.json --csv-report stats.csv

  # Machine-readable console output
  sw360-dashboard report --output json --output-file stats.json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		src, err := couchstore.New(cfg)
		if err != nil {
			contract.LogFatal("Cannot connect to document store", err)
		}
		if err := core.ExecuteReport(rootCtx, cfg, src, runManager); err != nil {
			contract.LogFatal("Cannot run report", err)
		}
	},
}
