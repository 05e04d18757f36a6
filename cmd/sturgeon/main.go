package main

import (
	"os"

	"sturgeon/cmd/sturgeon/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
