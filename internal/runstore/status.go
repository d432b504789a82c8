package runstore

import (
	"fmt"

	"github.com/sw360/sw360-dashboard/schema"
)

// PrintRunStatus prints run store status information.
func PrintRunStatus(status schema.RunStoreStatus) {
	fmt.Printf("Run Store Backend: %s\n", status.Backend)
	if status.Backend == schema.NoneBackend {
		fmt.Println("Run tracking is disabled.")
		return
	}
	if status.Path != "" {
		fmt.Printf("Database File: %s\n", status.Path)
	}
	fmt.Printf("Total Runs: %d\n", status.TotalRuns)
	if status.LastRun != nil {
		fmt.Printf("Last Run: %s\n", status.LastRun.Format("2006-01-02 15:04:05"))
	}
	fmt.Println("Table Sizes:")
	for table, size := range status.TableSizes {
		fmt.Printf("  %s: %d rows\n", table, size)
	}
}
