package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	cfg "github.com/cometbft/addrgen/config"
	"github.com/cometbft/addrgen/crypto"
	"github.com/cometbft/addrgen/crypto/pubaddr"
	cmtos "github.com/cometbft/addrgen/internal/os"
	"github.com/cometbft/addrgen/libs/log"
)

const (
	flagX    = "x"
	flagY    = "y"
	flagFile = "file"
)

// NewDeriveCmd returns the command that derives an address from a public
// key's X and Y coordinates.
func NewDeriveCmd() *cobra.Command {
	var x, y, file string

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive the address of a public key",
		Long: `Derive the address of a public key from its affine coordinates.

The address is the last 20 bytes of SHA256(X || Y), printed as 40 lowercase
hex characters. Each coordinate must be exactly 32 bytes, given either as hex
or as a list of decimal byte values:

  addrgen derive --x 0a8b2b66...3f5a --y f86d68e4...b6ca
  addrgen derive --x "[10,139,43,...]" --y "[248,109,104,...]"
  addrgen derive --file key.json     # {"pub_key_x":[...],"pub_key_y":[...]}
  addrgen derive --file -            # read the JSON from stdin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				pubKeyX, pubKeyY []byte
				err              error
			)
			switch {
			case file != "" && (x != "" || y != ""):
				return errors.New("--file cannot be combined with --x/--y")
			case file != "":
				bz, err := cmtos.ReadFileOrStdin(file, cmd.InOrStdin(), config.Derive.MaxInputBytes)
				if err != nil {
					return errors.Wrapf(err, "reading key file %s", file)
				}
				pubKeyX, pubKeyY, err = parseKeyFile(bz)
				if err != nil {
					return err
				}
			case x != "" && y != "":
				if pubKeyX, err = parseCoordinate(flagX, x); err != nil {
					return err
				}
				if pubKeyY, err = parseCoordinate(flagY, y); err != nil {
					return err
				}
			default:
				return errors.New("either --file or both --x and --y are required")
			}

			logger.Debug("deriving address",
				"x", log.NewLazySprintf("%x", pubKeyX),
				"y", log.NewLazySprintf("%x", pubKeyY))

			addr, err := pubaddr.Derive(pubKeyX, pubKeyY)
			if err != nil {
				return err
			}
			return printAddress(cmd, addr)
		},
	}

	cmd.Flags().StringVar(&x, flagX, "", "X coordinate (hex or [..] list of 32 bytes)")
	cmd.Flags().StringVar(&y, flagY, "", "Y coordinate (hex or [..] list of 32 bytes)")
	cmd.Flags().StringVarP(&file, flagFile, "f", "", "JSON key file with pub_key_x and pub_key_y, - for stdin")

	return cmd
}

func printAddress(cmd *cobra.Command, addr crypto.Address) error {
	logger.Debug("derived address", "address", addr)

	out := addr.String()
	if config.Output == cfg.OutputJSON {
		bz, err := json.Marshal(struct {
			Address crypto.Address `json:"address"`
		}{addr})
		if err != nil {
			return fmt.Errorf("failed to marshal address: %w", err)
		}
		out = string(bz)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
