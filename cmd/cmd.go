// Package cmd defines the command-line interface for sw360-dashboard.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sw360/sw360-dashboard/internal/contract"
	"github.com/sw360/sw360-dashboard/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("couchdb-url", "", "CouchDB server URL (e.g., http://localhost:5984)")
	rootCmd.PersistentFlags().String("couchdb-user", "", "CouchDB basic auth username")
	rootCmd.PersistentFlags().String("couchdb-password", "", "CouchDB basic auth password")
	rootCmd.PersistentFlags().String("couchdb-password-file", "", "Path to a file holding the CouchDB password")
	rootCmd.PersistentFlags().String("couchdb-database", contract.DefaultDatabase, "CouchDB database name")
	rootCmd.PersistentFlags().Int("page-size", contract.DefaultPageSize, "Documents fetched per _find request")
	rootCmd.PersistentFlags().String("fetch-timeout", "", "Per-page fetch timeout (e.g., 60s, 2m)")
	rootCmd.PersistentFlags().Int("max-retries", contract.DefaultMaxRetries, "Max retry attempts per page fetch")
	rootCmd.PersistentFlags().String("pushgateway-url", contract.DefaultGatewayURL, "Prometheus pushgateway URL")
	rootCmd.PersistentFlags().String("job", "", "Job label for pushed metrics (defaults per group)")
	rootCmd.PersistentFlags().String("push-timeout", "", "Push request timeout (e.g., 30s)")
	rootCmd.PersistentFlags().StringP("group", "g", "", "Business unit to scope the collection to")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("json-report", "", "Optional path for the JSON report file")
	rootCmd.PersistentFlags().String("csv-report", "", "Optional path for the CSV report file")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("runs-backend", string(schema.SQLiteBackend), "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("runs-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of collectCmd to Viper
	collectCmd.Flags().Bool("dry-run", false, "Render the metric batch instead of pushing it")
	if err := viper.BindPFlags(collectCmd.Flags()); err != nil {
		contract.LogFatal("Error binding collect flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}
}
