package commands

import (
	"github.com/spf13/cobra"

	"github.com/cometbft/addrgen/crypto/pubaddr"
	"github.com/cometbft/addrgen/libs/log"
)

// Sample P-256 public key, kept around as a smoke test for the binary.
// Its address is 8a0252d32e218701088f09d74143ab8004d95054.
var (
	samplePubKeyX = []int{10, 139, 43, 102, 182, 222, 131, 127, 94, 44, 137, 46, 114, 246, 188, 198, 153, 38, 51, 220, 104, 189, 146, 100, 20, 183, 186, 135, 40, 241, 63, 90}
	samplePubKeyY = []int{248, 109, 104, 228, 138, 216, 189, 114, 45, 18, 108, 136, 174, 69, 16, 115, 225, 68, 38, 193, 19, 153, 45, 106, 117, 46, 233, 180, 209, 239, 182, 202}
)

// NewSampleCmd returns the command that prints the address of the built-in
// sample key.
func NewSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print the address of the built-in sample key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			x, err := pubaddr.CoordinateFromInts("x", samplePubKeyX)
			if err != nil {
				return err
			}
			y, err := pubaddr.CoordinateFromInts("y", samplePubKeyY)
			if err != nil {
				return err
			}
			pk, err := pubaddr.NewPubKey(x, y)
			if err != nil {
				return err
			}

			logger.Debug("using sample key", "pubkey", log.NewLazySprintf("%v", pk), "address", log.NewLazyAddress(pk))
			return printAddress(cmd, pk.Address())
		},
	}
}
