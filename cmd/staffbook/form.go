// Form command runs the interactive entry-form session.
package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/staffbook/internal/employees"
	"github.com/mesh-intelligence/staffbook/internal/session"
	"github.com/mesh-intelligence/staffbook/pkg/types"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the interactive entry form",
	Long: `Form opens an interactive session with three entry fields (ID, Name,
Salary) and the full listing, reprinted after every mutation. Type "help"
inside the session for the command list.`,
	RunE: runForm,
}

func runForm(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	var schemaErr error
	if err != nil {
		// A schema-setup failure is reported inside the session but does
		// not prevent it from opening.
		if store == nil || !errors.Is(err, types.ErrSchemaSetup) {
			if store != nil {
				store.Close()
			}
			return err
		}
		schemaErr = err
	}
	defer store.Close()

	svc := employees.NewService(store, slog.Default())
	sess := session.New(svc, cmd.InOrStdin(), cmd.OutOrStdout(), slog.Default())

	if schemaErr != nil {
		sess.Notify.Error("Failed to create table: " + schemaErr.Error())
	}

	return sess.Run()
}
