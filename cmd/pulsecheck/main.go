// Package main provides the entry point for the PulseCheck CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pulsecheck",
	Short: "PulseCheck business health assessment",
	Long:  "PulseCheck classifies a small service business into an operating stage and archetype from six quick answers, optionally enriched with evidence from its online presence, and writes a plain-language readout of what's happening, what it costs, and what to fix first.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
