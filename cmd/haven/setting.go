// Setting command reads and writes store settings.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var settingCmd = &cobra.Command{
	Use:   "setting",
	Short: "Get or set a store setting",
	Long: `Setting reads and writes the key-value settings table. Values are
stored as JSON; set parses its argument as JSON first and falls back to a
plain string.

Example:
  haven setting get accentColor
  haven setting set accentColor lilac
  haven setting set notificationsLastSeen 1756300000000`,
}

var settingGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a setting value",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingGet,
}

var settingSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write a setting value",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingSet,
}

func init() {
	settingCmd.AddCommand(settingGetCmd, settingSetCmd)
}

func runSettingGet(cmd *cobra.Command, args []string) error {
	svc, err := openService()
	if err != nil {
		return err
	}
	defer svc.Close()

	var value any
	if err := svc.GetSetting(args[0], &value); err != nil {
		return err
	}
	return printJSON(value)
}

func runSettingSet(cmd *cobra.Command, args []string) error {
	svc, err := openService()
	if err != nil {
		return err
	}
	defer svc.Close()

	var value any
	if err := json.Unmarshal([]byte(args[1]), &value); err != nil {
		value = args[1]
	}
	if err := svc.SetSetting(args[0], value); err != nil {
		return err
	}
	fmt.Printf("Set %s\n", args[0])
	return nil
}
