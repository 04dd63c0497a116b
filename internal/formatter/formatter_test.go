package formatter

import (
	"errors"
	"math"
	"testing"

	"ballot/internal/models"
)

func tallyOf(candidates ...string) *models.Tally {
	t := models.NewTally()
	for _, c := range candidates {
		t.Add(c)
	}
	return t
}

func TestFormatReport(t *testing.T) {
	cases := map[string]struct {
		ballots []string
		want    string
	}{
		"two candidates": {
			ballots: []string{"Alice", "Alice", "Bob"},
			want: "Election Results\n" +
				"-------------------------\n" +
				"Total Votes: 3\n" +
				"-------------------------\n" +
				"Alice: 66.667% (2)\n" +
				"Bob: 33.333% (1)\n" +
				"-------------------------\n" +
				"Winner: Alice\n" +
				"-------------------------",
		},
		"single candidate": {
			ballots: []string{"X"},
			want: "Election Results\n" +
				"-------------------------\n" +
				"Total Votes: 1\n" +
				"-------------------------\n" +
				"X: 100.000% (1)\n" +
				"-------------------------\n" +
				"Winner: X\n" +
				"-------------------------",
		},
		"descending order": {
			ballots: []string{"Li", "Correy", "Khan", "Khan", "Khan", "Correy", "Khan", "O'Tooley"},
			want: "Election Results\n" +
				"-------------------------\n" +
				"Total Votes: 8\n" +
				"-------------------------\n" +
				"Khan: 50.000% (4)\n" +
				"Correy: 25.000% (2)\n" +
				"Li: 12.500% (1)\n" +
				"O'Tooley: 12.500% (1)\n" +
				"-------------------------\n" +
				"Winner: Khan\n" +
				"-------------------------",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			result, err := Tabulate(tallyOf(tc.ballots...))
			if err != nil {
				t.Fatalf("cannot tabulate: %s", err)
			}
			if got := New().Format(result); got != tc.want {
				t.Fatalf("unexpected report\nwant:\n%s\ngot:\n%s", tc.want, got)
			}
		})
	}
}

func TestRankIsStableOnTies(t *testing.T) {
	ranked, err := Rank(tallyOf("Bob", "Alice", "Carol", "Carol", "Alice", "Bob", "Dave"))
	if err != nil {
		t.Fatalf("cannot rank: %s", err)
	}

	want := []string{"Bob", "Alice", "Carol", "Dave"}
	if len(ranked) != len(want) {
		t.Fatalf("want %d candidates, got %d", len(want), len(ranked))
	}
	for i, name := range want {
		if ranked[i].Name != name {
			t.Errorf("position %d: want %s, got %s", i, name, ranked[i].Name)
		}
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Votes < ranked[i].Votes {
			t.Errorf("%s ranked above %s with fewer votes", ranked[i-1].Name, ranked[i].Name)
		}
	}

	winner, err := Winner(ranked)
	if err != nil {
		t.Fatalf("cannot pick winner: %s", err)
	}
	if winner != "Bob" {
		t.Errorf("want first ranked candidate Bob to win the tie, got %s", winner)
	}
}

func TestPercentagesSumToHundred(t *testing.T) {
	ballots := []string{"A", "B", "C", "A", "B", "A", "D", "E", "E", "F", "G"}
	ranked, err := Rank(tallyOf(ballots...))
	if err != nil {
		t.Fatalf("cannot rank: %s", err)
	}

	var sum float64
	for _, c := range ranked {
		sum += c.Percentage
	}
	if tolerance := 0.001 * float64(len(ranked)); math.Abs(sum-100) > tolerance {
		t.Fatalf("percentages sum to %f", sum)
	}
}

func TestWinnerHasMaximumVotes(t *testing.T) {
	tally := tallyOf("A", "B", "B", "C", "C", "C", "B", "B")
	result, err := Tabulate(tally)
	if err != nil {
		t.Fatalf("cannot tabulate: %s", err)
	}
	for _, name := range tally.Candidates() {
		if tally.Votes(name) > tally.Votes(result.Winner) {
			t.Errorf("%s has more votes than winner %s", name, result.Winner)
		}
	}
	if result.Winner != "B" {
		t.Errorf("want B, got %s", result.Winner)
	}
}

func TestEmptyTally(t *testing.T) {
	if _, err := Tabulate(models.NewTally()); !errors.Is(err, ErrNoVotes) {
		t.Fatalf("want ErrNoVotes, got %v", err)
	}
	if _, err := Winner(nil); !errors.Is(err, ErrNoVotes) {
		t.Fatalf("want ErrNoVotes, got %v", err)
	}
}
