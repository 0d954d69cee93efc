package main

import (
	"github.com/spf13/cobra"
)

var environmentCmd = &cobra.Command{
	Use:   "environment",
	Short: "Check the Python interpreter, required packages and environment variables",
	Args:  cobra.NoArgs,
	RunE:  runEnvironment,
}

func init() {
	rootCmd.AddCommand(environmentCmd)
}

func runEnvironment(cmd *cobra.Command, _ []string) error {
	checks, err := environmentChecks(cfg)
	if err != nil {
		return err
	}
	return runSuite(cmd, "Dristi AI Environment Verification", checks, nil)
}
