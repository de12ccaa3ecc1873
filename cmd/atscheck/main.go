package main

import (
	"os"

	"github.com/Sarma-Doranala/AI-Resume-Analyzer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
