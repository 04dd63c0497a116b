// Package tally counts ballots per candidate.
package tally

import (
	"fmt"
	"io"
	"log"

	"ballot/internal/models"
)

// RecordSource yields ballot records until io.EOF
type RecordSource interface {
	Next() (models.BallotRecord, error)
}

// Aggregate consumes every record of src and counts one vote per record.
func Aggregate(src RecordSource) (*models.Tally, error) {
	t := models.NewTally()
	for {
		rec, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read ballot: %w", err)
		}
		t.Add(rec.Candidate)
	}

	log.Printf("Tallied %d votes for %d candidates", t.Total(), len(t.Candidates()))
	return t, nil
}
