package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type fileFlags struct {
	input  string
	output string
	key    string
}

func (f *fileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "path to input file")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "path to output file")
	cmd.Flags().StringVarP(&f.key, "key", "k", "", "path to key file")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("key")
}

// encrypt -i in -o out -k key: one 8-byte value per input byte.
func encryptCmd() *cobra.Command {
	var f fileFlags
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file byte by byte",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Cipher.EncryptFile(f.input, f.output, f.key); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Encrypted %s -> %s\n", f.input, f.output)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

// decrypt -i in -o out -k key: reverses encrypt when given the other key file.
func decryptCmd() *cobra.Command {
	var f fileFlags
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file produced by encrypt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Cipher.DecryptFile(f.input, f.output, f.key); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Decrypted %s -> %s\n", f.input, f.output)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}
