// History command prints the audit log of mutations.
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the audit log of mutations",
	Long: `History prints every recorded mutation in chronological order:
adds, updates, and deletes, with the values each mutation wrote.

Example:
  staffbook history
  staffbook history --json`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		if store != nil {
			store.Close()
		}
		return err
	}
	defer store.Close()

	events, err := store.History()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		return printJSON(out, events)
	}

	if len(events) == 0 {
		fmt.Fprintln(out, "No history recorded.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tOP\tID\tNAME\tSALARY")
	fmt.Fprintln(w, "----\t--\t--\t----\t------")
	for _, ev := range events {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\n",
			ev.OccurredAt.Format("2006-01-02 15:04:05"),
			ev.Op,
			ev.EmployeeID,
			ev.Name,
			ev.Salary,
		)
	}
	w.Flush()
	fmt.Fprintf(out, "Total: %d event(s)\n", len(events))
	return nil
}
