package storage

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// ReportSink writes a rendered report to the console and to a file
type ReportSink struct {
	console io.Writer
	path    string
}

// NewReportSink creates a sink printing to console and storing the report at path
func NewReportSink(console io.Writer, path string) *ReportSink {
	return &ReportSink{
		console: console,
		path:    path,
	}
}

// Write prints the report followed by a line break, then stores it
// verbatim in the output file, replacing any previous content.
func (s *ReportSink) Write(report string) error {
	if _, err := fmt.Fprintln(s.console, report); err != nil {
		return fmt.Errorf("failed to print report: %w", err)
	}
	if err := s.writeFile(report); err != nil {
		return err
	}
	log.Printf("Report written to: %s", s.path)
	return nil
}

func (s *ReportSink) writeFile(report string) (err error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if _, err := io.WriteString(f, report); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
