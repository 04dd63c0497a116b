// Package config resolves file locations used by a tally run.
package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultInputPath  = "Resources/election_data.csv"
	DefaultOutputPath = "analysis/election_data_analysis.txt"
)

// Config holds the file locations of a run
type Config struct {
	// InputPath is the ballot CSV file
	InputPath string
	// OutputPath receives the rendered report
	OutputPath string
	// ArchivePath is an optional SQLite file keeping a history of runs.
	// Empty disables archiving.
	ArchivePath string
}

// Default returns the fixed relative locations
func Default() Config {
	return Config{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
	}
}

// Load returns the default configuration with environment overrides applied
func Load() Config {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) Config {
	cfg := Default()
	if v, ok := lookup("BALLOT_INPUT"); ok && v != "" {
		cfg.InputPath = v
	}
	if v, ok := lookup("BALLOT_OUTPUT"); ok && v != "" {
		cfg.OutputPath = v
	}
	if v, ok := lookup("BALLOT_ARCHIVE"); ok && v != "" {
		cfg.ArchivePath = v
	}

	cfg.InputPath = filepath.ToSlash(cfg.InputPath)
	cfg.OutputPath = filepath.ToSlash(cfg.OutputPath)
	return cfg
}
