package main

import (
	"os"

	"github.com/sahanr/persona/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
