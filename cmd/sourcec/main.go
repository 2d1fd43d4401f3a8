package main

import (
	"os"

	"github.com/sourcec-lang/sourcec/cmd/sourcec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
