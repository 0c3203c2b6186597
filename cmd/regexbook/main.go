package main

import (
	"os"

	"github.com/dmitrymomot/regexbook/cmd/regexbook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
