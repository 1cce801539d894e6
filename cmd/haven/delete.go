// Delete command removes traces and reflections.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a trace or reflection",
}

var deleteTraceCmd = &cobra.Command{
	Use:   "trace <trace-id>",
	Short: "Delete a trace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		defer svc.Close()

		if err := svc.DeleteTrace(args[0]); err != nil {
			return fmt.Errorf("delete trace: %w", err)
		}
		fmt.Printf("Deleted trace %s\n", args[0])
		return nil
	},
}

var deleteReflectionCmd = &cobra.Command{
	Use:   "reflection <reflection-id>",
	Short: "Delete a reflection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		defer svc.Close()

		if err := svc.DeleteReflection(args[0]); err != nil {
			return fmt.Errorf("delete reflection: %w", err)
		}
		fmt.Printf("Deleted reflection %s\n", args[0])
		return nil
	},
}

func init() {
	deleteCmd.AddCommand(deleteTraceCmd, deleteReflectionCmd)
}
