package main

import (
	"github.com/spf13/cobra"
)

var deploymentCmd = &cobra.Command{
	Use:   "deployment",
	Short: "Check the deployed health endpoints and the TensorFlow build",
	Long: `Polls the health endpoint of every configured hosting platform, stopping at
the first candidate URL that answers 200, then inspects the locally installed
numerical library. Health checks are informational unless marked required.`,
	Args: cobra.NoArgs,
	RunE: runDeployment,
}

func init() {
	rootCmd.AddCommand(deploymentCmd)
}

func runDeployment(cmd *cobra.Command, _ []string) error {
	checks, err := deploymentChecks(cfg)
	if err != nil {
		return err
	}
	return runSuite(cmd, "Dristi AI Deployment Verification", checks, &cfg.Notes)
}
