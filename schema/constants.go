package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the console output.
	OutputMode string

	// DatabaseBackend represents the database backend for run tracking.
	DatabaseBackend string

	// EntityType is the CouchDB document type discriminator.
	EntityType string
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All run store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All entity types fetched from the document store.
const (
	ComponentEntity EntityType = "component"
	ReleaseEntity   EntityType = "release"
	ProjectEntity   EntityType = "project"
)

// TopN is the fixed truncation size for ranked and enumerated lists.
const TopN = 50

// UnknownValue is the degradation bucket for missing or unrecognized
// categorical fields, matching what the SW360 UI shows for absent data.
const UnknownValue = "Unknown"

// CreatedOnFormat is the date layout SW360 stores in createdOn fields.
// Dates are date-only and interpreted as UTC for year bucketing.
const CreatedOnFormat = "2006-01-02"

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid run store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
