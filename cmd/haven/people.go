// People commands list friends, followers, and following.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itskylebrooks/haven/pkg/haven"
	"github.com/itskylebrooks/haven/pkg/types"
)

var friendsCmd = &cobra.Command{
	Use:   "friends",
	Short: "List mutual connections",
	RunE:  peopleRunner((*haven.Service).ListFriends),
}

var followersCmd = &cobra.Command{
	Use:   "followers",
	Short: "List users following the acting user",
	RunE:  peopleRunner((*haven.Service).ListFollowers),
}

var followingCmd = &cobra.Command{
	Use:   "following",
	Short: "List users the acting user follows",
	RunE:  peopleRunner((*haven.Service).ListFollowing),
}

var removeFollowerCmd = &cobra.Command{
	Use:   "remove-follower <username>",
	Short: "Remove a follower",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		defer svc.Close()

		user, err := actingUser(svc)
		if err != nil {
			return err
		}
		if err := svc.RemoveFollower(args[0], user); err != nil {
			return fmt.Errorf("remove follower: %w", err)
		}
		fmt.Printf("Removed follower %s\n", args[0])
		return nil
	},
}

func peopleRunner(list func(*haven.Service, string) ([]types.Person, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		defer svc.Close()

		user, err := actingUser(svc)
		if err != nil {
			return err
		}
		people, err := list(svc, user)
		if err != nil {
			return err
		}
		return printPeople(people)
	}
}
