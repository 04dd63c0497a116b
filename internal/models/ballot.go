package models

import "fmt"

// Column positions of a ballot row
const (
	VoterIDColumn   = 0
	CountyColumn    = 1
	CandidateColumn = 2
)

// BallotRecord represents a single cast ballot
type BallotRecord struct {
	VoterID   string
	County    string
	Candidate string
}

// NewBallotRecord binds positional row fields to a BallotRecord
func NewBallotRecord(fields []string) (BallotRecord, error) {
	if len(fields) <= CandidateColumn {
		return BallotRecord{}, fmt.Errorf("expected at least %d fields, got %d", CandidateColumn+1, len(fields))
	}
	return BallotRecord{
		VoterID:   fields[VoterIDColumn],
		County:    fields[CountyColumn],
		Candidate: fields[CandidateColumn],
	}, nil
}
