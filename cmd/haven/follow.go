// Follow command manages one-way subscriptions.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var followOff bool

var followCmd = &cobra.Command{
	Use:   "follow <username>",
	Short: "Follow another user",
	Long: `Follow subscribes the acting user to the given user's signal
traces. With --off the subscription is removed.

Example:
  haven follow noah
  haven follow noah --off`,
	Args: cobra.ExactArgs(1),
	RunE: runFollow,
}

func init() {
	followCmd.Flags().BoolVar(&followOff, "off", false, "unfollow instead")
}

func runFollow(cmd *cobra.Command, args []string) error {
	svc, err := openService()
	if err != nil {
		return err
	}
	defer svc.Close()

	user, err := actingUser(svc)
	if err != nil {
		return err
	}

	if err := svc.SetSubscription(user, args[0], !followOff); err != nil {
		return fmt.Errorf("set subscription: %w", err)
	}

	if followOff {
		fmt.Printf("Unfollowed %s\n", args[0])
	} else {
		fmt.Printf("Following %s\n", args[0])
	}
	return nil
}
