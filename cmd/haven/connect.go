// Connect command manages mutual connections.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var connectOff bool

var connectCmd = &cobra.Command{
	Use:   "connect <username>",
	Short: "Connect with another user",
	Long: `Connect establishes a mutual connection between the acting user
and the given user. Both edge directions are written together. With --off
the connection is removed in both directions.

Example:
  haven connect lena
  haven connect lena --off`,
	Args: cobra.ExactArgs(1),
	RunE: runConnect,
}

func init() {
	connectCmd.Flags().BoolVar(&connectOff, "off", false, "remove the connection instead")
}

func runConnect(cmd *cobra.Command, args []string) error {
	svc, err := openService()
	if err != nil {
		return err
	}
	defer svc.Close()

	user, err := actingUser(svc)
	if err != nil {
		return err
	}

	if err := svc.SetConnection(user, args[0], !connectOff); err != nil {
		return fmt.Errorf("set connection: %w", err)
	}

	if connectOff {
		fmt.Printf("Disconnected from %s\n", args[0])
	} else {
		fmt.Printf("Connected with %s\n", args[0])
	}
	return nil
}
