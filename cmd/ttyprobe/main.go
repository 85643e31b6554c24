// Package main is the entry point for the ttyprobe CLI.
package main

import (
	"os"

	"github.com/runger/ttycap/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
