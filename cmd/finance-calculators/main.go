package main

import (
	"os"

	"github.com/iwvelando/finance-calculators/cmd/finance-calculators/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
