package main

import (
	"os"

	"github.com/jbarrault/lexiq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
