package contract

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sw360/sw360-dashboard/schema"
)

// Default values for configuration.
const (
	DefaultDatabase     = "sw360db"
	DefaultGatewayURL   = "localhost:9091"
	DefaultJob          = "sw360_exporter"
	DefaultPageSize     = 1000
	MaxPageSize         = 10000
	DefaultMaxRetries   = 5
	MaxRetries          = 100
	DefaultFetchTimeout = 60 * time.Second
	DefaultPushTimeout  = 30 * time.Second
	DefaultResultLimit  = 10
)

// Config holds the validated runtime configuration for one collection run.
// Fields that require parsing or resolution (password files, durations,
// derived job names) are set by ProcessAndValidate from a ConfigRawInput.
type Config struct {
	// Document store
	CouchURL      string        // CouchDB server URL
	CouchUser     string        // Basic auth username
	CouchPassword string        // Resolved basic auth password
	Database      string        // Database name
	PageSize      int           // _find page size per request
	FetchTimeout  time.Duration // Per-page request timeout
	MaxRetries    int           // Max retry attempts per page fetch

	// Metrics gateway
	GatewayURL  string        // Pushgateway base URL
	Job         string        // Job label for the pushed batch
	PushTimeout time.Duration // Push request timeout
	DryRun      bool          // Render the batch instead of pushing

	// Scoping
	Group string // Business unit filter; empty means full collection

	// Output
	Output      schema.OutputMode // Console output format
	OutputFile  string            // Optional path for console output
	JSONReport  string            // Optional path for the JSON report file
	CSVReport   string            // Optional path for the CSV report file
	ResultLimit int               // Rows shown in console top lists

	// Run tracking
	RunsBackend   schema.DatabaseBackend
	RunsDBConnect string
}

// ConfigRawInput holds the raw inputs from flags, env and config file that
// require parsing or validation. Viper unmarshals directly into this struct.
type ConfigRawInput struct {
	CouchURL          string `mapstructure:"couchdb-url"`
	CouchUser         string `mapstructure:"couchdb-user"`
	CouchPassword     string `mapstructure:"couchdb-password"`
	CouchPasswordFile string `mapstructure:"couchdb-password-file"`
	Database          string `mapstructure:"couchdb-database"`
	PageSize          int    `mapstructure:"page-size"`
	FetchTimeoutStr   string `mapstructure:"fetch-timeout"`
	MaxRetries        int    `mapstructure:"max-retries"`
	GatewayURL        string `mapstructure:"pushgateway-url"`
	Job               string `mapstructure:"job"`
	PushTimeoutStr    string `mapstructure:"push-timeout"`
	DryRun            bool   `mapstructure:"dry-run"`
	Group             string `mapstructure:"group"`
	Output            string `mapstructure:"output"`
	OutputFile        string `mapstructure:"output-file"`
	JSONReport        string `mapstructure:"json-report"`
	CSVReport         string `mapstructure:"csv-report"`
	ResultLimit       int    `mapstructure:"limit"`
	RunsBackend       string `mapstructure:"runs-backend"`
	RunsDBConnect     string `mapstructure:"runs-db-connect"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Document store connection ---
	if input.CouchURL == "" {
		return fmt.Errorf("couchdb-url is required (set COUCHDB_URL or --couchdb-url)")
	}
	cfg.CouchURL = input.CouchURL
	cfg.CouchUser = input.CouchUser

	password, err := resolvePassword(input.CouchPassword, input.CouchPasswordFile)
	if err != nil {
		return err
	}
	cfg.CouchPassword = password

	cfg.Database = input.Database
	if cfg.Database == "" {
		cfg.Database = DefaultDatabase
	}

	// --- 2. Paging and retry bounds ---
	if input.PageSize <= 0 || input.PageSize > MaxPageSize {
		return fmt.Errorf("page-size must be between 1 and %d (received %d)", MaxPageSize, input.PageSize)
	}
	cfg.PageSize = input.PageSize

	if input.MaxRetries < 0 || input.MaxRetries > MaxRetries {
		return fmt.Errorf("max-retries must be between 0 and %d (received %d)", MaxRetries, input.MaxRetries)
	}
	cfg.MaxRetries = input.MaxRetries

	cfg.FetchTimeout, err = parseTimeout("fetch-timeout", input.FetchTimeoutStr, DefaultFetchTimeout)
	if err != nil {
		return err
	}
	cfg.PushTimeout, err = parseTimeout("push-timeout", input.PushTimeoutStr, DefaultPushTimeout)
	if err != nil {
		return err
	}

	// --- 3. Gateway and job label ---
	cfg.GatewayURL = input.GatewayURL
	if cfg.GatewayURL == "" {
		cfg.GatewayURL = DefaultGatewayURL
	}
	cfg.DryRun = input.DryRun
	cfg.Group = strings.TrimSpace(input.Group)

	cfg.Job = input.Job
	if cfg.Job == "" {
		if cfg.Group != "" {
			cfg.Job = fmt.Sprintf("sw360_%s_exporter", strings.ToLower(cfg.Group))
		} else {
			cfg.Job = DefaultJob
		}
	}

	// --- 4. Output validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format %q. must be text, csv, json", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	cfg.JSONReport = input.JSONReport
	cfg.CSVReport = input.CSVReport

	if input.ResultLimit <= 0 || input.ResultLimit > schema.TopN {
		return fmt.Errorf("limit must be between 1 and %d (received %d)", schema.TopN, input.ResultLimit)
	}
	cfg.ResultLimit = input.ResultLimit

	// --- 5. Run tracking backend ---
	backend := schema.DatabaseBackend(input.RunsBackend)
	if input.RunsBackend == "" {
		backend = schema.NoneBackend
	}
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid runs-backend %q. must be sqlite, mysql, postgresql, none", input.RunsBackend)
	}
	if err := ValidateDatabaseConnectionString(backend, input.RunsDBConnect); err != nil {
		return err
	}
	cfg.RunsBackend = backend
	cfg.RunsDBConnect = input.RunsDBConnect

	return nil
}

// resolvePassword resolves the basic auth password: a literal password
// wins, then a password file, then empty (anonymous access).
func resolvePassword(literal, file string) (string, error) {
	if literal != "" {
		return literal, nil
	}
	if file == "" {
		return "", nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("could not read couchdb-password-file %s: %w", file, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// parseTimeout parses a duration and enforces a positive bound.
func parseTimeout(name, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive (received %s)", name, d)
	}
	return d, nil
}

// ValidateDatabaseConnectionString checks backend/connection string pairing.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend, schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("runs-db-connect is required for %s backend", backend)
		}
	case schema.SQLiteBackend, schema.NoneBackend:
		// SQLite falls back to the default file path; none ignores it.
	}
	return nil
}

// Clone returns a shallow copy of the config for per-request overrides.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
