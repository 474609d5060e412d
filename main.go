package main

import (
	"os"

	"github.com/paologalligit/seat-helper/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
