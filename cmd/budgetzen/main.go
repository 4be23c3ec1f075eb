// Package main is the entry point for the budgetzen CLI.
package main

import (
	"os"

	"budgetzen/cmd/budgetzen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
