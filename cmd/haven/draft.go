// Draft command saves and restores composer drafts.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itskylebrooks/haven/pkg/types"
)

var (
	draftText string
	draftKind string
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Save or load the composer draft",
}

var draftSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the composer draft",
	Long: `Save stores text and kind under the composer draft slot, replacing
whatever was there.

Example:
  haven draft save --text "half a thought" --kind circle`,
	RunE: runDraftSave,
}

var draftLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the composer draft",
	RunE:  runDraftLoad,
}

func init() {
	draftSaveCmd.Flags().StringVar(&draftText, "text", "", "draft text (required)")
	draftSaveCmd.Flags().StringVar(&draftKind, "kind", types.KindSignal, "draft kind: circle or signal")
	_ = draftSaveCmd.MarkFlagRequired("text")
	draftCmd.AddCommand(draftSaveCmd, draftLoadCmd)
}

func runDraftSave(cmd *cobra.Command, args []string) error {
	if !types.ValidKind(draftKind) {
		return fmt.Errorf("%w: %q (valid: circle, signal)", types.ErrInvalidKind, draftKind)
	}

	svc, err := openService()
	if err != nil {
		return err
	}
	defer svc.Close()

	if err := svc.SaveDraft(types.DraftComposer, draftText, draftKind); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	fmt.Println("Draft saved")
	return nil
}

func runDraftLoad(cmd *cobra.Command, args []string) error {
	svc, err := openService()
	if err != nil {
		return err
	}
	defer svc.Close()

	draft, err := svc.LoadDraft(types.DraftComposer)
	if errors.Is(err, types.ErrNotFound) {
		fmt.Println("No draft")
		return nil
	}
	if err != nil {
		return fmt.Errorf("load draft: %w", err)
	}

	if flagJSON {
		return printJSON(draft)
	}
	fmt.Printf("[%s] %s\n", draft.Kind, draft.Text)
	return nil
}
