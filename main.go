package main

import (
	"os"

	"github.com/ykhadiri/alkimiya/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
