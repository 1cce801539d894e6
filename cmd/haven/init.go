// Init command creates the store and seeds the demo roster.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the haven store",
	Long: `Init opens the store in the resolved data directory, creating the
database and seeding the demo roster on first run. Running it again is a
no-op.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		defer svc.Close()

		user, err := svc.CurrentUser()
		if err != nil {
			return err
		}
		fmt.Printf("Haven initialized (current user: %s)\n", user)
		return nil
	},
}
