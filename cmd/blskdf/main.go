package main

import (
	"os"

	"blskdf/cmd/blskdf/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
