package main

import (
	"os"

	"github.com/quantumcare/designsync/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
