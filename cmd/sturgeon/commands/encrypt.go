package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// encrypt <input> <key file> <output>: plaintext in, tape file out.
func encryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt <input file> <key file> <output file>",
		Short: "Baudot-encode a plaintext file and encrypt it to a tape file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := appCtx.Cipher.Encrypt(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Printf("Encrypted %d code units to %s\n", n, args[2])
			return nil
		},
	}
}
