package main

import (
	"os"

	"github.com/rafaathzanar/playera-admin-portal/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
