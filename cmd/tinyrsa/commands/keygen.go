package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tinyrsa/internal/crypto"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "keygen",
		Aliases: []string{"generate"},
		Short:   "Generate a key pair into public.key and private.key",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, err := appCtx.Keygen.Generate()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Key pair written to %s.\n", appCtx.Config.Home)
			fmt.Fprintf(out, "public.key  (n, d) fingerprint: %s\n", crypto.Fingerprint(pair.Public))
			fmt.Fprintf(out, "private.key (n, e) fingerprint: %s\n", crypto.Fingerprint(pair.Private))
			if pair.P == pair.Q {
				fmt.Fprintf(out, "Warning: p = q = %d, so n = %d is a square and some bytes will not round-trip.\n",
					pair.P, pair.Private.Modulus)
			}
			return nil
		},
	}
}
