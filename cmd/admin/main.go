package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "doccare-admin",
		Short:         "Operator commands for the doccare service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(tokenCmd())
	rootCmd.AddCommand(deadLetterCmd())

	if err := rootCmd.Execute(); err != nil {
		newLogger().WithError(err).Error("command failed")
		os.Exit(1)
	}
}
