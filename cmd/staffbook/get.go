// Get command retrieves one employee record by ID.
package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/staffbook/internal/employees"
	"github.com/mesh-intelligence/staffbook/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one employee record",
	Long: `Get retrieves the employee record with the given ID.

Example:
  staffbook get 1
  staffbook get 1 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		if store != nil {
			store.Close()
		}
		return err
	}
	defer store.Close()

	svc := employees.NewService(store, slog.Default())

	e, err := svc.Get(args[0])
	if err != nil {
		// The parsed ID is only known on success; re-parse for the message.
		id, parseErr := employees.ParseID(args[0])
		if parseErr != nil {
			return parseErr
		}
		return userError(err, id)
	}

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), e)
	}
	return printEmployees(cmd.OutOrStdout(), []types.Employee{e})
}
