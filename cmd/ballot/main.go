package main

import (
	"os"

	"ballot/internal/config"
	"ballot/internal/election"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:           "ballot",
		Short:         "Tally ballot records and report the election winner",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return election.Run(cfg, cmd.OutOrStdout())
		},
	}
	rootCmd.AddCommand(newHistoryCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(election.ExitCode(err))
	}
}
