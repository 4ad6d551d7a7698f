package main

import (
	"os"

	"github.com/sdiallo/avicoach/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
