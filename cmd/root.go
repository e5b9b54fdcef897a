/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "safenum",
	Short: "Checked numeric arithmetic with pluggable violation policies",
	Long: `safenum wraps numbers so that overflow, precision loss and
sign-mismatched comparisons are detected at the point of operation, and
builds closed intervals [start,end] on top of that. The eval subcommand
exposes the interval arithmetic on the command line.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It returns the process exit code so callers (main and the
// in-process CLI tests) decide how to exit.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}
