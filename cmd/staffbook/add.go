// Add command inserts a new employee record.
package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/staffbook/internal/employees"
)

var (
	addID     string
	addName   string
	addSalary string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new employee record",
	Long: `Add inserts a new employee record with the given ID, name, and salary.

ID and salary must be integers; the ID must not already be taken.

Example:
  staffbook add --id 1 --name "Alice" --salary 50000
  staffbook add --id 2 --name "Bob" --salary 40000 --json`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addID, "id", "", "employee ID (integer)")
	addCmd.Flags().StringVar(&addName, "name", "", "employee name")
	addCmd.Flags().StringVar(&addSalary, "salary", "", "employee salary (integer)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		if store != nil {
			store.Close()
		}
		return err
	}
	defer store.Close()

	svc := employees.NewService(store, slog.Default())

	e, err := svc.Add(employees.FormInput{ID: addID, Name: addName, Salary: addSalary})
	if err != nil {
		return userError(err, e.ID)
	}

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), e)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added employee %d\n", e.ID)
	return nil
}
