// Delete command removes an employee record by ID.
package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/staffbook/internal/employees"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an employee record by ID",
	Long: `Delete removes the employee record with the given ID.

The deletion is confirmed interactively unless --yes is given. A declined
confirmation leaves the store untouched.

Example:
  staffbook delete 1
  staffbook delete 1 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	// Validate before prompting so a malformed ID never reaches the gate.
	id, err := employees.ParseID(args[0])
	if err != nil {
		return err
	}

	if !deleteYes {
		prompt := fmt.Sprintf("Are you sure you want to delete employee ID %d?", id)
		if !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), prompt) {
			return nil
		}
	}

	store, err := openStore()
	if err != nil {
		if store != nil {
			store.Close()
		}
		return err
	}
	defer store.Close()

	svc := employees.NewService(store, slog.Default())

	if _, err := svc.Delete(args[0]); err != nil {
		return userError(err, id)
	}

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), map[string]any{"deleted": id, "status": "success"})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted employee %d\n", id)
	return nil
}
