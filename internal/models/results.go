package models

// CandidateResult represents a ranked candidate entry
type CandidateResult struct {
	Name       string
	Votes      int
	Percentage float64
}

// ElectionResult represents the ranked outcome of a tally
type ElectionResult struct {
	Total      int
	Candidates []CandidateResult
	Winner     string
}
