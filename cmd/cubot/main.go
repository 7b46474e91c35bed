// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command cubot creates, runs, and programs Cubot worlds.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
