package main

import (
	"os"

	"github.com/msto63/sfe/cmd/sfe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
