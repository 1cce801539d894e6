// Feed command prints the aggregate state for a user.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show the feed as seen by a user",
	Long: `Feed prints every trace, newest first, annotated for the acting
user: a * marker on traces they resonate, and each trace's reflections in
posting order.

Example:
  haven feed
  haven feed --as lena
  haven feed --json`,
	RunE: runFeed,
}

func runFeed(cmd *cobra.Command, args []string) error {
	svc, err := openService()
	if err != nil {
		return err
	}
	defer svc.Close()

	user, err := actingUser(svc)
	if err != nil {
		return err
	}

	state, err := svc.StateFor(user)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	if flagJSON {
		return printJSON(state)
	}

	for _, t := range state.Traces {
		marker := " "
		if t.Resonates {
			marker = "*"
		}
		created := time.UnixMilli(t.CreatedAt).Format("Jan 2 15:04")
		fmt.Printf("%s [%s] %s (@%s) · %s · %s\n", marker, t.Kind, t.AuthorName, t.Author, created, t.ID)
		fmt.Printf("    %s\n", t.Text)
		for _, r := range t.Reflections {
			fmt.Printf("      ↳ %s: %s\n", r.Author, r.Text)
		}
	}
	return nil
}
