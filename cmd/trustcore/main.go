package main

import (
	"os"

	"trustcore/cmd/trustcore/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
