// Package main provides the dbt-vc CLI.
package main

import (
	"os"

	"github.com/sparkbrains-DE/dbt-vc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
