// Package main provides gascli, an operator tool for extracting and ranking
// gas supply offers without going through the HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	_ "gascompare/internal/completion/claude"
	_ "gascompare/internal/completion/gemini"
	_ "gascompare/internal/completion/openai"
)

var rootCmd = &cobra.Command{
	Use:           "gascli",
	Short:         "Gas offer extraction and comparison",
	Long:          "gascli reads gas supply contracts, extracts their tariff offers and ranks them by yearly cost.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
