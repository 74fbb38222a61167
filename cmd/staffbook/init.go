// Init command creates the configuration and data directories.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/staffbook/pkg/sqlite"
	"github.com/mesh-intelligence/staffbook/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend  string `yaml:"backend"`
	DataDir  string `yaml:"data_dir,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize staffbook storage",
	Long:  "Create configuration and data directories, then initialize the storage backend.",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, configFileExt)
	if err := writeConfigIfMissing(configPath, dataDir); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	// Initialize the data directory and schema via Open then Close.
	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	store := sqlite.NewStore()
	if err := store.Open(cfg); err != nil {
		store.Close()
		return fmt.Errorf("initialize storage: %w", err)
	}
	if err := store.Close(); err != nil {
		return fmt.Errorf("finalize storage: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Staffbook initialized successfully")
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path, dataDir string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := configFile{
		Backend:  types.BackendSQLite,
		DataDir:  dataDir,
		LogLevel: defaultLogLevel,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
