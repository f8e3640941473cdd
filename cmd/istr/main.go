package main

import (
	"os"

	"github.com/msto63/istring/cmd/istr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
