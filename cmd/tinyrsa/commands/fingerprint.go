package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tinyrsa/internal/crypto"
)

func fingerprintCmd() *cobra.Command {
	var keyPath string
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the fingerprint of a key file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := appCtx.Keys.LoadKey(keyPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", crypto.Fingerprint(key))
			return nil
		},
	}
	cmd.Flags().StringVarP(&keyPath, "key", "k", "", "path to key file")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
