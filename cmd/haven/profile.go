// Profile command shows and edits a user's profile.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itskylebrooks/haven/pkg/types"
)

var (
	profileName   string
	profileBio    string
	profileAvatar string
)

var profileCmd = &cobra.Command{
	Use:   "profile [username]",
	Short: "Show or update a profile",
	Long: `Profile prints the given user's profile, defaulting to the acting
user. Passing --name, --bio, or --avatar updates those fields first; fields
not passed are left untouched.

Example:
  haven profile
  haven profile lena
  haven profile --bio "Photographer in Hamburg."`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().StringVar(&profileName, "name", "", "set display name")
	profileCmd.Flags().StringVar(&profileBio, "bio", "", "set bio")
	profileCmd.Flags().StringVar(&profileAvatar, "avatar", "", "set avatar reference")
}

func runProfile(cmd *cobra.Command, args []string) error {
	svc, err := openService()
	if err != nil {
		return err
	}
	defer svc.Close()

	user, err := actingUser(svc)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		user = args[0]
	}

	var update types.ProfileUpdate
	if cmd.Flags().Changed("name") {
		update.Name = &profileName
	}
	if cmd.Flags().Changed("bio") {
		update.Bio = &profileBio
	}
	if cmd.Flags().Changed("avatar") {
		update.Avatar = &profileAvatar
	}
	if update.Name != nil || update.Bio != nil || update.Avatar != nil {
		if err := svc.UpdateProfile(user, update); err != nil {
			return err
		}
		if err := svc.RefreshNames(); err != nil {
			return err
		}
	}

	u, err := svc.GetUser(user)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(u)
	}
	fmt.Printf("%s (%s)\n", u.Name, u.Handle)
	if u.Bio != "" {
		fmt.Printf("  %s\n", u.Bio)
	}
	fmt.Printf("  visibility: %s\n", u.Visibility)
	return nil
}
