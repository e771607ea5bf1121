package main

import (
	"os"

	"github.com/flengure/textops/cmd/textops/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
