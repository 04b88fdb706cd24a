package commands

import (
	"github.com/spf13/cobra"

	cfg "github.com/cometbft/addrgen/config"
	cmtos "github.com/cometbft/addrgen/internal/os"
)

// InitFilesCmd writes a default config file under the home directory.
var InitFilesCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the addrgen home directory",
	RunE:  initFiles,
}

func initFiles(*cobra.Command, []string) error {
	return initFilesWithConfig(config)
}

func initFilesWithConfig(config *cfg.Config) error {
	if err := cfg.EnsureRoot(config.RootDir); err != nil {
		return err
	}

	configFile := config.ConfigFile()
	if cmtos.FileExists(configFile) {
		logger.Info("Found config file", "path", configFile)
		return nil
	}

	if err := cfg.WriteConfigFile(configFile, config); err != nil {
		return err
	}
	logger.Info("Generated config file", "path", configFile)
	return nil
}
