package main

import (
	"bytes"
	"strings"
	"testing"
)

// executeCommand runs the CLI through the root command with the given
// arguments and scripted stdin. Persistent flag state is reset first so
// runs do not leak into each other.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	flagConfigDir = ""
	flagDataDir = ""
	flagJSON = false
	configDataDir = ""

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}
