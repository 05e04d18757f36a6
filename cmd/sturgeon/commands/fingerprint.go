package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <key file>",
		Short: "Print a key file's fingerprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := appCtx.Keys.Fingerprint(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Fingerprint: %s\n", fp)
			return nil
		},
	}
}
