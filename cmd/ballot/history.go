package main

import (
	"errors"
	"fmt"

	"ballot/internal/config"
	"ballot/internal/formatter"
	"ballot/internal/storage"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errArchiveDisabled = errors.New("archive is disabled, set BALLOT_ARCHIVE")

func openArchive(cfg config.Config) (*storage.Archive, error) {
	if cfg.ArchivePath == "" {
		return nil, errArchiveDisabled
	}
	return storage.OpenArchive(cfg.ArchivePath)
}

func newHistoryCmd(cfg config.Config) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived election results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			archive, err := openArchive(cfg)
			if err != nil {
				return err
			}
			defer archive.Close()

			runs, err := archive.ListRuns(limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No archived runs")
				return nil
			}
			bold := color.New(color.Bold).SprintFunc()
			for _, run := range runs {
				fmt.Fprintf(out, "%s  %-14s  %s votes  winner %s  (%s)\n",
					run.ID,
					humanize.Time(run.Created.Time()),
					humanize.Comma(int64(run.Total)),
					bold(run.Winner),
					run.Source,
				)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of runs to list")
	cmd.AddCommand(newShowCmd(cfg))
	return cmd
}

// newShowCmd prints the report of an archived run again
func newShowCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run id>",
		Short: "Print the report of an archived run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			archive, err := openArchive(cfg)
			if err != nil {
				return err
			}
			defer archive.Close()

			result, err := archive.GetResult(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.New().Format(result))
			return nil
		},
	}
}
