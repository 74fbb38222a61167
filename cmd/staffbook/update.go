// Update command overwrites name and salary of an existing record.
package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/staffbook/internal/employees"
)

var (
	updateID     string
	updateName   string
	updateSalary string
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an employee's name and salary",
	Long: `Update overwrites the name and salary of the record with the given ID.
The ID itself is never changed; changing an ID requires delete and re-add.

Example:
  staffbook update --id 1 --name "Alice B" --salary 55000`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateID, "id", "", "employee ID (integer)")
	updateCmd.Flags().StringVar(&updateName, "name", "", "employee name")
	updateCmd.Flags().StringVar(&updateSalary, "salary", "", "employee salary (integer)")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		if store != nil {
			store.Close()
		}
		return err
	}
	defer store.Close()

	svc := employees.NewService(store, slog.Default())

	e, err := svc.Update(employees.FormInput{ID: updateID, Name: updateName, Salary: updateSalary})
	if err != nil {
		return userError(err, e.ID)
	}

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), e)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated employee %d\n", e.ID)
	return nil
}
