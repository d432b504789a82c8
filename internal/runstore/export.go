package runstore

import (
	"errors"
	"fmt"

	"github.com/sw360/sw360-dashboard/internal/parquet"
)

// ExecuteRunExport performs the actual export of run history to Parquet files.
func ExecuteRunExport(outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetRunStore()
	if store == nil {
		return errors.New("run store is not initialized")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run store status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total collection runs: %d\n", status.TotalRuns)
	fmt.Printf("Total ranking entries: %d\n", status.TableSizes[runRankingsTable])

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve collection runs: %w", err)
	}

	rankings, err := store.GetAllRankings()
	if err != nil {
		return fmt.Errorf("failed to retrieve rankings: %w", err)
	}

	parquetRuns := parquet.ConvertCollectionRunRecords(runs)
	parquetRankings := parquet.ConvertRankingRecords(rankings)

	runsFile := outputFile + ".collection_runs.parquet"
	if err := parquet.WriteCollectionRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write collection runs: %w", err)
	}
	fmt.Printf("Exported %d collection runs to: %s\n", len(parquetRuns), runsFile)

	rankingsFile := outputFile + ".run_rankings.parquet"
	if err := parquet.WriteRankingsParquet(parquetRankings, rankingsFile); err != nil {
		return fmt.Errorf("failed to write rankings: %w", err)
	}
	fmt.Printf("Exported %d ranking entries to: %s\n", len(parquetRankings), rankingsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with Spark, DuckDB, Pandas and other Parquet-compatible tools.")

	return nil
}
