package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// readtape <input>: display a Baudot tape file as ASCII. No key involved.
func readtapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "readtape <input file>",
		Short: "Display a Baudot tape file as ASCII",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := appCtx.Tape.Read(args[0])
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}
}
