//go:build integration

// Package integration contains integration tests for sw360-dashboard.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags integration ./integration
package integration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVersionCommand verifies the version command output.
func TestVersionCommand(t *testing.T) {
	out, err := runDashboardCommand(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sw360-dashboard CLI")
	assert.Contains(t, out, "Version:")
	assert.Contains(t, out, "Runtime:")
}

// TestBareInvocationShowsHelp verifies running without a subcommand prints usage.
func TestBareInvocationShowsHelp(t *testing.T) {
	out, err := runDashboardCommand(t, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "collect")
	assert.Contains(t, out, "report")
	assert.Contains(t, out, "runs")
}

// TestCollectRequiresCouchURL verifies the collect command fails fast without a store URL.
func TestCollectRequiresCouchURL(t *testing.T) {
	out, err := runDashboardCommand(t, []string{"SW360_COUCHDB_URL="}, "collect")
	assert.Error(t, err)
	assert.Contains(t, out, "couchdb-url is required")
}

// TestCollectRejectsInvalidOutput verifies output format validation.
func TestCollectRejectsInvalidOutput(t *testing.T) {
	out, err := runDashboardCommand(t, nil,
		"collect", "--couchdb-url", "http://localhost:5984", "--output", "xml")
	assert.Error(t, err)
	assert.Contains(t, out, "invalid output format")
}

// TestRunsLifecycleWithSQLite exercises migrate, status and clear against a temp SQLite store.
func TestRunsLifecycleWithSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	backendArgs := []string{"--runs-backend", "sqlite", "--runs-db-connect", dbPath}

	out, err := runDashboardCommand(t, nil, append([]string{"runs", "migrate"}, backendArgs...)...)
	require.NoError(t, err, out)

	out, err = runDashboardCommand(t, nil, append([]string{"runs", "status"}, backendArgs...)...)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Run Store Backend: sqlite")
	assert.Contains(t, out, "Total Runs: 0")

	out, err = runDashboardCommand(t, nil, append([]string{"runs", "clear"}, backendArgs...)...)
	require.NoError(t, err, out)
}

// TestRunsStatusWithNoneBackend verifies run tracking can be disabled.
func TestRunsStatusWithNoneBackend(t *testing.T) {
	out, err := runDashboardCommand(t, nil, "runs", "status", "--runs-backend", "none")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Run tracking is disabled.")
}
