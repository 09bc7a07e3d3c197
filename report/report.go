// Package report writes the outcome of an optimizer run.
package report

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bent101/go-wordle-magicwords/genetic"
	"github.com/bent101/go-wordle-magicwords/solve"
	"github.com/bent101/go-wordle-magicwords/word"
)

// Report is the YAML document written after a run.
type Report struct {
	GeneratedAt string `yaml:"generated_at"`

	Sequence    []string `yaml:"sequence"`
	Conflicts   int      `yaml:"conflicts"`
	Unsolved    int      `yaml:"unsolved"`
	Solved      bool     `yaml:"solved"`
	Generations int      `yaml:"generations"`

	// AverageCandidates and WorstCandidates count the hidden words still
	// possible after the sequence is played
	AverageCandidates float64 `yaml:"average_candidates"`
	WorstCandidates   int     `yaml:"worst_candidates"`

	HiddenWords int        `yaml:"hidden_words"`
	GuessWords  int        `yaml:"guess_words"`
	Parameters  Parameters `yaml:"parameters"`

	// Collisions lists the groups of hidden words the sequence cannot
	// tell apart
	Collisions [][]string `yaml:"collisions,omitempty"`
}

type Parameters struct {
	PopulationSize int     `yaml:"population_size"`
	SequenceLength int     `yaml:"sequence_length"`
	EliteCount     int     `yaml:"elite_count"`
	MutationRate   float64 `yaml:"mutation_rate"`
	BirthCount     int     `yaml:"birth_count"`
	MaxGenerations int     `yaml:"max_generations"`
	Seed           uint64  `yaml:"seed"`
}

// New verifies the best sequence of res against the table's hidden words
// and builds the report.
func New(res genetic.Result, table *solve.Table, cfg genetic.Config) Report {
	seq := res.Best.Sequence
	hidden := table.Hidden().Words()

	r := Report{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Sequence:    wordStrings(seq),
		Conflicts:   table.Conflicts(seq),
		Unsolved:    table.Unsolved(seq),
		Solved:      res.Solved,
		Generations: res.Generations,
		HiddenWords: table.Hidden().Len(),
		GuessWords:  table.Guesses().Len(),
		Parameters: Parameters{
			PopulationSize: cfg.PopulationSize,
			SequenceLength: cfg.SequenceLength,
			EliteCount:     cfg.EliteCount,
			MutationRate:   cfg.MutationRate,
			BirthCount:     cfg.BirthCount,
			MaxGenerations: cfg.MaxGenerations,
			Seed:           cfg.Seed,
		},
	}
	r.AverageCandidates, r.WorstCandidates = table.Spread(seq)
	for _, g := range solve.Collisions(seq, hidden) {
		r.Collisions = append(r.Collisions, wordStrings(g))
	}
	return r
}

func wordStrings(words []word.Word) []string {
	res := make([]string, len(words))
	for i, w := range words {
		res[i] = w.String()
	}
	return res
}

// Write saves the report as YAML.
func (r Report) Write(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Read loads a report written by Write.
func Read(path string) (Report, error) {
	var r Report
	data, err := os.ReadFile(path)
	if err != nil {
		return r, err
	}
	if err := yaml.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}
