package main

import (
	"os"

	"github.com/LoriKarikari/npmcheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
