/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/vipcxj/safenum/internal/eval"

	"github.com/spf13/cobra"
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval [expression]...",
	Short: eval.ShortDesc,
	Long:  eval.LongDesc,
	RunE:  eval.Run,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringP("policy", "p", "abort", "Violation policy: abort or clamp")
	evalCmd.Flags().StringP("kind", "k", "int", "Domain kind of the evaluation: int or float")
	evalCmd.Flags().StringP("file", "f", "", "YAML file with an 'exprs' list to evaluate")
}
