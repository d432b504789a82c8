package contract

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sw360/sw360-dashboard/schema"
)

// validInput returns a minimal raw input that passes validation.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		CouchURL:    "http://localhost:5984",
		PageSize:    1000,
		MaxRetries:  5,
		Output:      "text",
		ResultLimit: 10,
		RunsBackend: "sqlite",
	}
}

func TestProcessAndValidate(t *testing.T) {
	t.Run("valid input with defaults", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, validInput()))
		assert.Equal(t, DefaultDatabase, cfg.Database)
		assert.Equal(t, DefaultGatewayURL, cfg.GatewayURL)
		assert.Equal(t, DefaultJob, cfg.Job)
		assert.Equal(t, DefaultFetchTimeout, cfg.FetchTimeout)
		assert.Equal(t, DefaultPushTimeout, cfg.PushTimeout)
		assert.Equal(t, schema.TextOut, cfg.Output)
		assert.Equal(t, schema.SQLiteBackend, cfg.RunsBackend)
	})

	t.Run("couchdb url is required", func(t *testing.T) {
		input := validInput()
		input.CouchURL = ""
		err := ProcessAndValidate(&Config{}, input)
		assert.ErrorContains(t, err, "couchdb-url is required")
	})

	t.Run("page size bounds", func(t *testing.T) {
		for _, size := range []int{0, -1, MaxPageSize + 1} {
			input := validInput()
			input.PageSize = size
			assert.ErrorContains(t, ProcessAndValidate(&Config{}, input), "page-size", "size=%d", size)
		}
	})

	t.Run("max retries bounds", func(t *testing.T) {
		for _, retries := range []int{-1, MaxRetries + 1} {
			input := validInput()
			input.MaxRetries = retries
			assert.ErrorContains(t, ProcessAndValidate(&Config{}, input), "max-retries", "retries=%d", retries)
		}
	})

	t.Run("zero retries is allowed", func(t *testing.T) {
		input := validInput()
		input.MaxRetries = 0
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, 0, cfg.MaxRetries)
	})

	t.Run("timeouts parse durations", func(t *testing.T) {
		input := validInput()
		input.FetchTimeoutStr = "90s"
		input.PushTimeoutStr = "2m"
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, 90*time.Second, cfg.FetchTimeout)
		assert.Equal(t, 2*time.Minute, cfg.PushTimeout)
	})

	t.Run("negative timeout rejected", func(t *testing.T) {
		input := validInput()
		input.FetchTimeoutStr = "-5s"
		assert.ErrorContains(t, ProcessAndValidate(&Config{}, input), "must be positive")
	})

	t.Run("garbage timeout rejected", func(t *testing.T) {
		input := validInput()
		input.PushTimeoutStr = "soon"
		assert.ErrorContains(t, ProcessAndValidate(&Config{}, input), "invalid push-timeout")
	})

	t.Run("group derives the job label", func(t *testing.T) {
		input := validInput()
		input.Group = " DEPT-A "
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, "DEPT-A", cfg.Group)
		assert.Equal(t, "sw360_dept-a_exporter", cfg.Job)
	})

	t.Run("explicit job wins over group", func(t *testing.T) {
		input := validInput()
		input.Group = "DEPT-A"
		input.Job = "custom_job"
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, "custom_job", cfg.Job)
	})

	t.Run("output mode is case insensitive", func(t *testing.T) {
		input := validInput()
		input.Output = "JSON"
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, schema.JSONOut, cfg.Output)
	})

	t.Run("invalid output mode rejected", func(t *testing.T) {
		input := validInput()
		input.Output = "xml"
		assert.ErrorContains(t, ProcessAndValidate(&Config{}, input), "invalid output format")
	})

	t.Run("limit bounds", func(t *testing.T) {
		for _, limit := range []int{0, -3, schema.TopN + 1} {
			input := validInput()
			input.ResultLimit = limit
			assert.ErrorContains(t, ProcessAndValidate(&Config{}, input), "limit", "limit=%d", limit)
		}
	})

	t.Run("empty runs backend means none", func(t *testing.T) {
		input := validInput()
		input.RunsBackend = ""
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, schema.NoneBackend, cfg.RunsBackend)
	})

	t.Run("invalid runs backend rejected", func(t *testing.T) {
		input := validInput()
		input.RunsBackend = "oracle"
		assert.ErrorContains(t, ProcessAndValidate(&Config{}, input), "invalid runs-backend")
	})

	t.Run("server backends require a connection string", func(t *testing.T) {
		for _, backend := range []string{"mysql", "postgresql"} {
			input := validInput()
			input.RunsBackend = backend
			assert.ErrorContains(t, ProcessAndValidate(&Config{}, input), "runs-db-connect is required")
		}
	})
}

func TestResolvePassword(t *testing.T) {
	t.Run("literal wins", func(t *testing.T) {
		got, err := resolvePassword("secret", "/nonexistent")
		require.NoError(t, err)
		assert.Equal(t, "secret", got)
	})

	t.Run("file fallback trims whitespace", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pw")
		require.NoError(t, os.WriteFile(path, []byte("  filepass\n"), 0o600))
		got, err := resolvePassword("", path)
		require.NoError(t, err)
		assert.Equal(t, "filepass", got)
	})

	t.Run("empty means anonymous", func(t *testing.T) {
		got, err := resolvePassword("", "")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unreadable file errors", func(t *testing.T) {
		_, err := resolvePassword("", filepath.Join(t.TempDir(), "missing"))
		assert.ErrorContains(t, err, "couchdb-password-file")
	})
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.NoneBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pw@tcp(localhost:3306)/runs"))
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Database: "sw360db", Group: "DEPT-A"}
	clone := cfg.Clone()
	clone.Group = "DEPT-B"
	assert.Equal(t, "DEPT-A", cfg.Group)
	assert.Equal(t, "sw360db", clone.Database)
}
