package main

import (
	"os"

	"github.com/VISHALVISHAL29/Dashboard/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
