// Reflect command comments on a trace.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/itskylebrooks/haven/pkg/haven"
	"github.com/itskylebrooks/haven/pkg/types"
)

var reflectText string

var reflectCmd = &cobra.Command{
	Use:   "reflect <trace-id>",
	Short: "Add a reflection to a trace",
	Long: `Reflect adds a comment to the given trace as the acting user.

Example:
  haven reflect Ab3dEf6hIj9k --text "Saving this line."`,
	Args: cobra.ExactArgs(1),
	RunE: runReflect,
}

func init() {
	reflectCmd.Flags().StringVar(&reflectText, "text", "", "reflection text (required)")
	_ = reflectCmd.MarkFlagRequired("text")
}

func runReflect(cmd *cobra.Command, args []string) error {
	if reflectText == "" {
		return errors.New("reflection text must not be empty")
	}
	if len(reflectText) > types.MaxReflectionLen {
		return fmt.Errorf("reflection text exceeds %d characters", types.MaxReflectionLen)
	}

	svc, err := openService()
	if err != nil {
		return err
	}
	defer svc.Close()

	author, err := actingUser(svc)
	if err != nil {
		return err
	}

	id := haven.NewID()
	if err := svc.AddReflection(args[0], author, reflectText, time.Now().UnixMilli(), id); err != nil {
		return fmt.Errorf("create reflection: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"id": id})
	}
	fmt.Printf("Added reflection %s\n", id)
	return nil
}
