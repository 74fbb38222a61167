// List command prints the full employee listing.
package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/staffbook/internal/employees"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all employee records",
	Long: `List prints every employee record, ordered by ID ascending.

Example:
  staffbook list
  staffbook list --json`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		if store != nil {
			store.Close()
		}
		return err
	}
	defer store.Close()

	svc := employees.NewService(store, slog.Default())

	listing, err := svc.Listing()
	if err != nil {
		return err
	}

	return printEmployees(cmd.OutOrStdout(), listing)
}
