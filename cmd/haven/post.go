// Post command creates a new trace.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/itskylebrooks/haven/pkg/haven"
	"github.com/itskylebrooks/haven/pkg/types"
)

var (
	postText  string
	postKind  string
	postImage string
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Create a new trace",
	Long: `Post creates a trace authored by the acting user. The kind picks
the audience: circle traces are for mutual connections, signal traces for
followers.

Example:
  haven post --text "Stillness teaches what noise hides." --kind circle
  haven post --text "Shipping small things." --kind signal --as milo`,
	RunE: runPost,
}

func init() {
	postCmd.Flags().StringVar(&postText, "text", "", "trace text (required)")
	postCmd.Flags().StringVar(&postKind, "kind", types.KindSignal, "audience kind: circle or signal")
	postCmd.Flags().StringVar(&postImage, "image", "", "optional image reference")
	_ = postCmd.MarkFlagRequired("text")
}

func runPost(cmd *cobra.Command, args []string) error {
	// The data layer trusts its inputs; validation lives here.
	if postText == "" {
		return errors.New("trace text must not be empty")
	}
	if !types.ValidKind(postKind) {
		return fmt.Errorf("%w: %q (valid: circle, signal)", types.ErrInvalidKind, postKind)
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
	if err := svc.AddTrace(author, postText, postKind, time.Now().UnixMilli(), id, postImage); err != nil {
		return fmt.Errorf("create trace: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"id": id})
	}
	fmt.Printf("Posted trace %s\n", id)
	return nil
}
