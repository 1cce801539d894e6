// Shared helpers for haven CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/itskylebrooks/haven/pkg/haven"
	"github.com/itskylebrooks/haven/pkg/types"
)

// openService resolves the data directory and opens the Haven service,
// seeding the demo roster on first run. The caller must defer Close.
func openService() (*haven.Service, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	svc, err := haven.Open(types.Config{
		DataDir:     dataDir,
		CurrentUser: configCurrentUser,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return svc, nil
}

// actingUser returns the username commands act as: the --as flag when set,
// otherwise the store's currentUser setting.
func actingUser(svc *haven.Service) (string, error) {
	if flagUser != "" {
		return flagUser, nil
	}
	user, err := svc.CurrentUser()
	if err != nil {
		return "", fmt.Errorf("resolve current user: %w", err)
	}
	return user, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printPeople renders a person list in the selected output format.
func printPeople(people []types.Person) error {
	if flagJSON {
		return printJSON(people)
	}
	if len(people) == 0 {
		fmt.Println("(nobody)")
		return nil
	}
	for _, p := range people {
		fmt.Printf("%-20s %s\n", p.Handle, p.Name)
	}
	return nil
}
