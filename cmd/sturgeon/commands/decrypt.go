package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// decrypt <input> <key file> <output>: tape file in, plaintext out.
func decryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <input file> <key file> <output file>",
		Short: "Decrypt a tape file and decode it to a plaintext file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := appCtx.Cipher.Decrypt(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Printf("Decrypted %d code units to %s\n", n, args[2])
			return nil
		},
	}
}
