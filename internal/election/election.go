// Package election runs the tally pipeline: ballots are read, counted,
// ranked and the rendered report is written out.
package election

import (
	"errors"
	"fmt"
	"io"
	"log"

	"ballot/internal/config"
	"ballot/internal/formatter"
	"ballot/internal/models"
	"ballot/internal/parser"
	"ballot/internal/storage"
	"ballot/internal/tally"
)

// Process exit statuses
const (
	ExitOK      = 0
	ExitIOError = 1
	ExitFault   = 2
)

// Run tallies the configured ballot file and writes the report to console
// and to the configured output file. Nothing is written unless the report
// could be rendered.
func Run(cfg config.Config, console io.Writer) error {
	t, err := countBallots(cfg.InputPath)
	if err != nil {
		return err
	}

	result, err := formatter.Tabulate(t)
	if err != nil {
		return fmt.Errorf("failed to rank candidates: %w", err)
	}
	report := formatter.New().Format(result)

	if err := storage.NewReportSink(console, cfg.OutputPath).Write(report); err != nil {
		return err
	}

	if cfg.ArchivePath != "" {
		if err := archive(cfg, result); err != nil {
			return err
		}
	}
	return nil
}

func countBallots(path string) (*models.Tally, error) {
	r, err := parser.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ballots: %w", err)
	}
	defer func() {
		if err := r.Close(); err != nil {
			log.Printf("Error closing ballot file: %v", err)
		}
	}()

	return tally.Aggregate(r)
}

func archive(cfg config.Config, result *models.ElectionResult) error {
	a, err := storage.OpenArchive(cfg.ArchivePath)
	if err != nil {
		return err
	}
	defer a.Close()

	_, err = a.SaveRun(cfg.InputPath, result)
	return err
}

// IsFault reports whether err comes from unusable input rather than from
// a failing file operation.
func IsFault(err error) bool {
	return errors.Is(err, parser.ErrMalformedRecord) || errors.Is(err, formatter.ErrNoVotes)
}

// ExitCode maps the outcome of Run to a process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsFault(err):
		return ExitFault
	default:
		return ExitIOError
	}
}
