//go:build database

package integration

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const seedDocs = `{"docs": [
	{"_id": "c1", "type": "component", "name": "zlib", "componentType": "OSS", "createdOn": "2019-03-01"},
	{"_id": "c2", "type": "component", "name": "internal-lib", "componentType": "INTERNAL", "createdOn": "2020-01-05"},
	{"_id": "r1", "type": "release", "name": "zlib", "version": "1.2.13", "componentId": "c1", "createdOn": "2022-11-20"},
	{"_id": "r2", "type": "release", "name": "ghost", "version": "0.1.0", "componentId": "deleted", "createdOn": "2021-01-01"},
	{"_id": "p1", "type": "project", "name": "Dashboard", "businessUnit": "DEPT-A", "createdOn": "2022-01-10",
		"releaseIdToUsage": {"r1": {"mainlineState": "OPEN"}}}
]}`

// TestCollectAgainstCouchDB runs the full collect pipeline against a real CouchDB.
func TestCollectAgainstCouchDB(t *testing.T) {
	ctx := context.Background()

	// Start CouchDB container
	req := testcontainers.ContainerRequest{
		Image:        "couchdb:3.3",
		ExposedPorts: []string{"5984/tcp"},
		Env: map[string]string{
			"COUCHDB_USER":     "admin",
			"COUCHDB_PASSWORD": "secret123",
		},
		WaitingFor: wait.ForListeningPort("5984/tcp").WithStartupTimeout(60 * time.Second),
	}
	couchC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = couchC.Terminate(ctx) }()

	host, err := couchC.Host(ctx)
	require.NoError(t, err)
	port, err := couchC.MappedPort(ctx, "5984")
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, port.Port())
	authURL := fmt.Sprintf("http://admin:secret123@%s:%s", host, port.Port())

	// Create the database and seed documents
	putReq, err := http.NewRequest(http.MethodPut, authURL+"/sw360db", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(putReq)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = http.Post(authURL+"/sw360db/_bulk_docs", "application/json", bytes.NewBufferString(seedDocs))
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	dbPath := filepath.Join(t.TempDir(), "runs.db")
	sharedArgs := []string{
		"--couchdb-url", baseURL,
		"--couchdb-user", "admin",
		"--couchdb-password", "secret123",
		"--runs-backend", "sqlite",
		"--runs-db-connect", dbPath,
	}

	// Dry-run collect renders the metric batch without a pushgateway
	jsonReport := filepath.Join(t.TempDir(), "report.json")
	out, err := runDashboardCommand(t, nil, append([]string{
		"collect", "--dry-run", "--json-report", jsonReport,
	}, sharedArgs...)...)
	require.NoError(t, err, out)
	assert.Contains(t, out, "sw360_components_total 2")
	assert.Contains(t, out, "sw360_releases_total 2")
	assert.Contains(t, out, "sw360_projects_total 1")
	assert.Contains(t, out, "sw360_orphaned_releases 1")

	// The JSON report survives next to the console output
	_, statErr := os.Stat(jsonReport)
	assert.NoError(t, statErr)

	// The run was recorded in the SQLite store
	out, err = runDashboardCommand(t, nil, append([]string{"runs", "status"}, sharedArgs...)...)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Total Runs: 1")

	// Run history exports to Parquet
	exportBase := filepath.Join(t.TempDir(), "history")
	out, err = runDashboardCommand(t, nil, append([]string{
		"runs", "export", "--output-file", exportBase,
	}, sharedArgs...)...)
	require.NoError(t, err, out)
	_, statErr = os.Stat(exportBase + ".collection_runs.parquet")
	assert.NoError(t, statErr)
	_, statErr = os.Stat(exportBase + ".run_rankings.parquet")
	assert.NoError(t, statErr)

	// Group scoping restricts the batch to one business unit
	out, err = runDashboardCommand(t, nil, append([]string{
		"collect", "--dry-run", "--group", "DEPT-A",
	}, sharedArgs...)...)
	require.NoError(t, err, out)
	assert.Contains(t, out, "sw360_components_total 1")
	assert.Contains(t, out, "sw360_releases_total 1")
}
