// Package main provides the haven CLI, a terminal front end for the local
// Haven feed store.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/itskylebrooks/haven/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, types.ErrUserNotFound) || errors.Is(err, types.ErrUsernameExists) {
			os.Exit(exitUserError)
		}
		os.Exit(exitSysError)
	}
}
