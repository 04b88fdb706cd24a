package main

import (
	"os"
	"path/filepath"

	cmd "github.com/cometbft/addrgen/cmd/addrgen/commands"
	cfg "github.com/cometbft/addrgen/config"
	"github.com/cometbft/addrgen/libs/cli"
)

func main() {
	rootCmd := cmd.RootCmd
	rootCmd.AddCommand(
		cmd.NewDeriveCmd(),
		cmd.NewSampleCmd(),
		cmd.InitFilesCmd,
		cmd.VersionCmd,
	)

	exec := cli.PrepareMainCmd(rootCmd, "ADDRGEN", os.ExpandEnv(filepath.Join("$HOME", cfg.DefaultAddrgenDir)))
	if err := exec.Execute(); err != nil {
		os.Exit(1)
	}
}
