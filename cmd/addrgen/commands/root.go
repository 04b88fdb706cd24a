package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/cometbft/addrgen/config"
	"github.com/cometbft/addrgen/libs/cli"
	cmtflags "github.com/cometbft/addrgen/libs/cli/flags"
	"github.com/cometbft/addrgen/libs/log"
)

var (
	config = cfg.DefaultConfig()
	logger = log.NewLogger(os.Stderr)
)

func init() {
	registerFlagsRootCmd(RootCmd)
}

func registerFlagsRootCmd(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log_level", config.LogLevel, "log level")
}

// ParseConfig retrieves the default environment configuration and
// applies the config file, environment and flags on top of it.
func ParseConfig(*cobra.Command) (*cfg.Config, error) {
	conf := cfg.DefaultConfig()
	err := viper.Unmarshal(conf)
	if err != nil {
		return nil, err
	}

	conf.SetRoot(viper.GetString(cli.HomeFlag))

	if err := conf.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("error in config file: %w", err)
	}
	return conf, nil
}

// RootCmd is the root command for addrgen.
var RootCmd = &cobra.Command{
	Use:   "addrgen",
	Short: "Derive short addresses from elliptic-curve public keys",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) (err error) {
		if cmd.Name() == VersionCmd.Name() {
			return nil
		}

		config, err = ParseConfig(cmd)
		if err != nil {
			return err
		}

		if config.LogFormat == cfg.LogFormatJSON {
			logger = log.NewJSONLogger(os.Stderr)
		} else {
			logger = log.NewLoggerWithColor(os.Stderr, config.LogColors)
		}

		logger, err = cmtflags.ParseLogLevel(config.LogLevel, logger, cfg.DefaultLogLevel)
		if err != nil {
			return err
		}

		if viper.GetBool(cli.TraceFlag) {
			logger = log.NewTracingLogger(logger)
		}

		logger = logger.With("module", "cli")
		logger.Debug("loaded config", "home", config.RootDir, "output", config.Output)
		return nil
	},
}
