package main

import (
	"os"

	"github.com/toastd/toastd/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
