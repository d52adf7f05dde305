package main

import (
	"os"

	"github.com/planforge/planforge/cmd/planforge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
