// Package main provides the entry point for the resume screening service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_screener",
	Short: "Resume screening and candidate matching service",
	Long: "resume_screener scores candidate resumes against job descriptions by blending " +
		"vector-space text similarity with rule-based bonuses, and ranks candidate batches.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
