// Resonate command toggles a like on a trace.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resonateCmd = &cobra.Command{
	Use:   "resonate <trace-id>",
	Short: "Toggle a resonate on a trace",
	Long: `Resonate flips whether the acting user resonates the given trace
and reports the new state.

Example:
  haven resonate Ab3dEf6hIj9k`,
	Args: cobra.ExactArgs(1),
	RunE: runResonate,
}

func runResonate(cmd *cobra.Command, args []string) error {
	svc, err := openService()
	if err != nil {
		return err
	}
	defer svc.Close()

	user, err := actingUser(svc)
	if err != nil {
		return err
	}

	on, err := svc.ToggleResonate(args[0], user)
	if err != nil {
		return fmt.Errorf("toggle resonate: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]bool{"resonates": on})
	}
	if on {
		fmt.Println("Resonating")
	} else {
		fmt.Println("No longer resonating")
	}
	return nil
}
