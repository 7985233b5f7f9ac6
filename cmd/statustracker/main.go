// Package main is the entry point for the statustracker CLI.
package main

import (
	"os"

	"github.com/statustracker/statustracker/cmd/statustracker/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
