package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cometbft/addrgen/version"
)

var verbose bool

// VersionCmd prints the addrgen version, and with -v the address scheme version as JSON.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	Run: func(cmd *cobra.Command, args []string) {
		addrgenVersion := version.AddrgenSemVer
		if version.GitCommitHash != "" {
			addrgenVersion += "+" + version.GitCommitHash
		}

		if verbose {
			values, err := json.MarshalIndent(struct {
				Addrgen        string `json:"addrgen"`
				AddressVersion uint64 `json:"address_version"`
			}{
				Addrgen:        addrgenVersion,
				AddressVersion: version.AddressVersion,
			}, "", "  ")
			if err != nil {
				panic(fmt.Sprintf("failed to marshal version info: %v", err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(values))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), addrgenVersion)
		}
	},
}

func init() {
	VersionCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show address scheme version")
}
