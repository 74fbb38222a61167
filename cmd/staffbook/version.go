package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/staffbook/pkg/staffbook"
)

const modulePath = "github.com/mesh-intelligence/staffbook"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the staffbook version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "staffbook v%s\nmodule: %s\n", staffbook.Version, modulePath)
		return nil
	},
}
