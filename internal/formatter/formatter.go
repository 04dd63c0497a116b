package formatter

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"ballot/internal/models"
)

// ErrNoVotes is returned when percentages are requested for an empty tally
var ErrNoVotes = errors.New("division by zero: no votes were counted")

const separator = "-------------------------"

// ResultsFormatter handles the formatting of election results
type ResultsFormatter struct {
	newline string
}

// New creates a new ResultsFormatter
func New() *ResultsFormatter {
	return &ResultsFormatter{newline: "\n"}
}

// Rank orders candidates by descending vote count. Candidates with equal
// counts keep their first-seen order.
func Rank(t *models.Tally) ([]models.CandidateResult, error) {
	total := t.Total()
	if total == 0 {
		return nil, ErrNoVotes
	}

	names := t.Candidates()
	ranked := make([]models.CandidateResult, len(names))
	for i, name := range names {
		votes := t.Votes(name)
		ranked[i] = models.CandidateResult{
			Name:       name,
			Votes:      votes,
			Percentage: float64(votes) / float64(total) * 100,
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Votes > ranked[j].Votes
	})
	return ranked, nil
}

// Winner returns the candidate with the highest count. On a tie the
// candidate ranked first wins.
func Winner(ranked []models.CandidateResult) (string, error) {
	if len(ranked) == 0 {
		return "", ErrNoVotes
	}
	winner := ranked[0]
	for _, c := range ranked[1:] {
		if c.Votes > winner.Votes {
			winner = c
		}
	}
	return winner.Name, nil
}

// Tabulate ranks the tally and determines the winner
func Tabulate(t *models.Tally) (*models.ElectionResult, error) {
	ranked, err := Rank(t)
	if err != nil {
		return nil, err
	}
	winner, err := Winner(ranked)
	if err != nil {
		return nil, err
	}

	total := t.Total()
	log.Printf("Winner: %s with %d of %d votes", winner, ranked[0].Votes, total)
	return &models.ElectionResult{
		Total:      total,
		Candidates: ranked,
		Winner:     winner,
	}, nil
}

// Format renders the election report. The final separator is not followed
// by a line break.
func (f *ResultsFormatter) Format(result *models.ElectionResult) string {
	var b strings.Builder

	b.WriteString("Election Results" + f.newline)
	b.WriteString(separator + f.newline)
	fmt.Fprintf(&b, "Total Votes: %d%s", result.Total, f.newline)
	b.WriteString(separator + f.newline)
	for _, c := range result.Candidates {
		b.WriteString(f.FormatCandidate(c))
	}
	b.WriteString(separator + f.newline)
	fmt.Fprintf(&b, "Winner: %s%s", result.Winner, f.newline)
	b.WriteString(separator)

	return b.String()
}

// FormatCandidate renders a single report line for a candidate
func (f *ResultsFormatter) FormatCandidate(c models.CandidateResult) string {
	return fmt.Sprintf("%s: %.3f%% (%d)%s", c.Name, c.Percentage, c.Votes, f.newline)
}
