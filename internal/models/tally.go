package models

// Tally counts votes per candidate, remembering the order in which
// candidates were first seen.
type Tally struct {
	counts map[string]int
	order  []string
	total  int
}

// NewTally creates an empty Tally
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Add records one vote for the candidate
func (t *Tally) Add(candidate string) {
	if _, ok := t.counts[candidate]; !ok {
		t.order = append(t.order, candidate)
	}
	t.counts[candidate]++
	t.total++
}

// Votes returns the vote count of a candidate
func (t *Tally) Votes(candidate string) int {
	return t.counts[candidate]
}

// Candidates returns candidate names in first-seen order
func (t *Tally) Candidates() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Total returns the sum of all candidate counts
func (t *Tally) Total() int {
	return t.total
}
