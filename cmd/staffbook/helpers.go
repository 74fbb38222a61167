// Shared helpers for staffbook CLI commands.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/staffbook/pkg/sqlite"
	"github.com/mesh-intelligence/staffbook/pkg/types"
)

// openStore resolves the data directory, creates a SQLite store, and opens
// it. The caller must close the store when the returned store is non-nil,
// even on error: a schema-setup failure returns both the open store and an
// error wrapping ErrSchemaSetup so the caller can decide whether to
// continue.
func openStore() (types.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	store := sqlite.NewStore()
	if err := store.Open(cfg); err != nil {
		if errors.Is(err, types.ErrSchemaSetup) {
			return store, err
		}
		return nil, fmt.Errorf("open store: %w", err)
	}

	return store, nil
}

// userError phrases record-operation failures for CLI output. Validation
// errors already carry their message; everything else is wrapped as-is.
func userError(err error, id int) error {
	switch {
	case errors.Is(err, types.ErrInvalidInput):
		return err
	case errors.Is(err, types.ErrDuplicateID):
		return fmt.Errorf("employee ID %d already exists", id)
	case errors.Is(err, types.ErrNotFound):
		return fmt.Errorf("no employee found with ID %d", id)
	default:
		return err
	}
}

// printEmployees renders records as a table, or as a JSON array when the
// --json flag is set.
func printEmployees(out io.Writer, employees []types.Employee) error {
	if flagJSON {
		if employees == nil {
			employees = []types.Employee{}
		}
		return printJSON(out, employees)
	}

	if len(employees) == 0 {
		fmt.Fprintln(out, "No employees found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSALARY")
	fmt.Fprintln(w, "--\t----\t------")
	for _, e := range employees {
		fmt.Fprintf(w, "%d\t%s\t%d\n", e.ID, e.Name, e.Salary)
	}
	w.Flush()
	fmt.Fprintf(out, "Total: %d employee(s)\n", len(employees))
	return nil
}

// printJSON writes v as indented JSON.
func printJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

// confirm asks a yes/no question on out and reads the answer from in,
// defaulting to no.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N] ", prompt)
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return true
	}
	return false
}
