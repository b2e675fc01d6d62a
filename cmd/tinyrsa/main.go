package main

import (
	"os"

	"tinyrsa/cmd/tinyrsa/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
