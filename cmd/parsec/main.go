package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "parsec",
		Short: "Tools for the parsec string-parsing library",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCSVCmd())
	rootCmd.AddCommand(newKeypathCmd())
	rootCmd.AddCommand(newLintCmd())
	rootCmd.AddCommand(newServeLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
