package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// keygen <key file>: write a random key with the standard teeth counts.
func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen <key file>",
		Short: "Write a fresh random key file with the standard teeth counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := appCtx.Keys.Generate(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("New key written to %s\nFingerprint: %s\n", args[0], fp)
			return nil
		},
	}
}
