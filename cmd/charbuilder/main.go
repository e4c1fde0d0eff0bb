// Package main is the entry point for the charbuilder CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "charbuilder",
	Short: "D&D 5e character builder",
	Long:  `charbuilder drives a guided D&D 5e level-1 character build: drafts, step validation, derived stats, and export files.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(sheetCmd)
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(contentCmd)
}
