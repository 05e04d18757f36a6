package commands

import (
	"github.com/spf13/cobra"

	"sturgeon/internal/app"
	"sturgeon/internal/services/cipher"
	"sturgeon/internal/services/keys"
	"sturgeon/internal/services/tape"
	"sturgeon/internal/store"
)

var appCtx *app.App

func Execute() error {
	fs := store.NewFileStore()
	appCtx = app.New(keys.New(fs), cipher.New(fs), tape.New(fs))

	root := &cobra.Command{
		Use:   "sturgeon",
		Short: "Siemens & Halske T52a teleprinter cipher machine simulator",
	}

	root.AddCommand(keygenCmd(), encryptCmd(), decryptCmd(), readtapeCmd(), fingerprintCmd())
	return root.Execute()
}
