// main is the entry point for the sw360-dashboard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/sw360/sw360-dashboard/cmd"
	"github.com/sw360/sw360-dashboard/internal/runstore"
)

func main() {
	cmd.SetRunManager(runstore.Manager)

	err := cmd.Execute()
	runstore.CloseRunStore()
	if err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}
