// Rename command changes a username across every table.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <new-username>",
	Short: "Change the acting user's username",
	Long: `Rename moves the acting user to a new username. Every trace,
reflection, resonate, connection, and subscription that references the old
name is rewritten in the same transaction.

Example:
  haven rename kyle
  haven rename lena2 --as lena`,
	Args: cobra.ExactArgs(1),
	RunE: runRename,
}

func runRename(cmd *cobra.Command, args []string) error {
	svc, err := openService()
	if err != nil {
		return err
	}
	defer svc.Close()

	user, err := actingUser(svc)
	if err != nil {
		return err
	}

	if err := svc.ChangeUsername(user, args[0]); err != nil {
		return err
	}
	if err := svc.RefreshNames(); err != nil {
		return err
	}
	fmt.Printf("Renamed %s to %s\n", user, args[0])
	return nil
}
