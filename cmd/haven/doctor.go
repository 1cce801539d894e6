// Doctor command runs store maintenance.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Repair the store",
	Long: `Doctor removes duplicate traces left behind by interrupted seed
runs from older store versions, keeping the newest copy of each and
dropping the orphaned reflections and resonates with the rest.`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	svc, err := openService()
	if err != nil {
		return err
	}
	defer svc.Close()

	removed, err := svc.DedupeTraces()
	if err != nil {
		return fmt.Errorf("dedupe traces: %w", err)
	}
	if removed == 0 {
		fmt.Println("Store is healthy")
	} else {
		fmt.Printf("Removed %d duplicate trace(s)\n", removed)
	}
	return nil
}
