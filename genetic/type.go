package genetic

import (
	"golang.org/x/exp/slices"

	"github.com/bent101/go-wordle-magicwords/word"
)

// Scorer counts the hidden words a sequence fails to tell apart.
// Implementations must be safe for concurrent use.
type Scorer interface {
	Conflicts(seq []word.Word) int
}

// Candidate is a guess sequence with its cached conflict count
type Candidate struct {
	// Sequence is the ordered list of guesses
	Sequence []word.Word
	// Conflicts is the fitness score (lower = better), valid once scored
	Conflicts int

	scored bool
}

// clone copies the candidate so the next generation never aliases the
// current one
func (c Candidate) clone() Candidate {
	c.Sequence = slices.Clone(c.Sequence)
	return c
}

// Population is one generation of candidates
type Population struct {
	// Members is ranked best first once the generation is evaluated
	Members []Candidate
	// Generation is the zero-based iteration this population represents
	Generation int
}

// Stats summarizes one evaluated generation
type Stats struct {
	Generation int
	Best       int
	Worst      int
	Average    float64
}

func (p *Population) stats() Stats {
	best := MinBy(p.Members, func(c Candidate) int { return c.Conflicts })
	worst := MinBy(p.Members, func(c Candidate) int { return -c.Conflicts })

	total := 0
	for _, c := range p.Members {
		total += c.Conflicts
	}

	return Stats{
		Generation: p.Generation,
		Best:       best.Conflicts,
		Worst:      worst.Conflicts,
		Average:    float64(total) / float64(len(p.Members)),
	}
}

// Result is the outcome of a run
type Result struct {
	// Best is the lowest-conflict candidate of the last evaluated generation
	Best Candidate
	// Generations is the number of generations evaluated
	Generations int
	// Solved is true when Best separates every hidden word
	Solved bool
}
