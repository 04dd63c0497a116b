package storage

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"ballot/internal/models"

	"github.com/google/uuid"
	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/tools/types"
	_ "modernc.org/sqlite"
)

// Run is an archived tally
type Run struct {
	ID      string         `db:"id"`
	Created types.DateTime `db:"created"`
	Source  string         `db:"source"`
	Total   int            `db:"total"`
	Winner  string         `db:"winner"`
}

type candidateRow struct {
	Name       string  `db:"name"`
	Votes      int     `db:"votes"`
	Percentage float64 `db:"percentage"`
}

// Archive keeps a history of election results in a SQLite database
type Archive struct {
	db *dbx.DB
}

// OpenArchive opens, or creates, the archive database at path
func OpenArchive(path string) (*Archive, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}

	db, err := dbx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	if err := ensureTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure archive tables exist: %w", err)
	}

	return &Archive{db: db}, nil
}

func ensureTables(db *dbx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			seq     INTEGER PRIMARY KEY AUTOINCREMENT,
			id      TEXT NOT NULL UNIQUE,
			created TEXT NOT NULL,
			source  TEXT NOT NULL,
			total   INTEGER NOT NULL,
			winner  TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS candidate_results (
			run_id     TEXT NOT NULL REFERENCES runs (id),
			position   INTEGER NOT NULL,
			name       TEXT NOT NULL,
			votes      INTEGER NOT NULL,
			percentage REAL NOT NULL,
			PRIMARY KEY (run_id, position)
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.NewQuery(stmt).Execute(); err != nil {
			return err
		}
	}
	return nil
}

// SaveRun stores the result together with its ranked candidates
func (a *Archive) SaveRun(source string, result *models.ElectionResult) (*Run, error) {
	run := &Run{
		ID:      uuid.NewString(),
		Created: types.NowDateTime(),
		Source:  source,
		Total:   result.Total,
		Winner:  result.Winner,
	}

	err := a.db.Transactional(func(tx *dbx.Tx) error {
		_, err := tx.Insert("runs", dbx.Params{
			"id":      run.ID,
			"created": run.Created.String(),
			"source":  run.Source,
			"total":   run.Total,
			"winner":  run.Winner,
		}).Execute()
		if err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}

		for i, c := range result.Candidates {
			_, err := tx.Insert("candidate_results", dbx.Params{
				"run_id":     run.ID,
				"position":   i + 1,
				"name":       c.Name,
				"votes":      c.Votes,
				"percentage": c.Percentage,
			}).Execute()
			if err != nil {
				return fmt.Errorf("failed to save result for %s: %w", c.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Archived run %s with %d candidates", run.ID, len(result.Candidates))
	return run, nil
}

// ListRuns returns up to limit archived runs, newest first
func (a *Archive) ListRuns(limit int) ([]Run, error) {
	var runs []Run
	err := a.db.Select("id", "created", "source", "total", "winner").
		From("runs").
		OrderBy("seq DESC").
		Limit(int64(limit)).
		All(&runs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch runs: %w", err)
	}
	return runs, nil
}

// GetResult rebuilds the election result of an archived run
func (a *Archive) GetResult(runID string) (*models.ElectionResult, error) {
	var run Run
	err := a.db.Select("id", "created", "source", "total", "winner").
		From("runs").
		Where(dbx.HashExp{"id": runID}).
		One(&run)
	if err != nil {
		return nil, fmt.Errorf("failed to find run %s: %w", runID, err)
	}

	var rows []candidateRow
	err = a.db.Select("name", "votes", "percentage").
		From("candidate_results").
		Where(dbx.HashExp{"run_id": runID}).
		OrderBy("position").
		All(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch results for run %s: %w", runID, err)
	}

	result := &models.ElectionResult{
		Total:      run.Total,
		Winner:     run.Winner,
		Candidates: make([]models.CandidateResult, len(rows)),
	}
	for i, row := range rows {
		result.Candidates[i] = models.CandidateResult(row)
	}
	return result, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}
