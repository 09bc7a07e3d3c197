package genetic

import (
	"errors"
	"fmt"
)

// Defaults for a full-size search
const (
	// DefaultPopulationSize is the number of candidates in each generation
	DefaultPopulationSize = 100

	// DefaultSequenceLength is the number of guesses in each candidate
	DefaultSequenceLength = 8

	// DefaultEliteCount is the number of best candidates copied unchanged
	DefaultEliteCount = 10

	// DefaultMutationRate is the probability a child has one guess replaced
	DefaultMutationRate = 0.1

	// DefaultBirthCount is the number of fully random candidates injected
	// at the end of each generation
	DefaultBirthCount = 1

	// DefaultMaxGenerations caps the search
	DefaultMaxGenerations = 1638400
)

var (
	ErrConfig          = errors.New("invalid optimizer config")
	ErrEmptyDictionary = errors.New("guess dictionary is empty")
)

// Config holds the search parameters
type Config struct {
	// PopulationSize is the number of candidates maintained in each generation
	PopulationSize int
	// SequenceLength is the number of guesses per candidate
	SequenceLength int
	// EliteCount is the number of best candidates preserved unchanged
	EliteCount int
	// MutationRate is the probability (0-1) that a non-elite child mutates
	MutationRate float64
	// BirthCount is the number of fresh random candidates per generation
	BirthCount int
	// MaxGenerations is the maximum number of generations evaluated
	MaxGenerations int
	// Parallelism bounds concurrent fitness evaluations (0 for NumCPU)
	Parallelism int
	// Seed for random number generation (0 for random seed)
	Seed uint64
}

// DefaultConfig returns the parameters of a full-size search.
func DefaultConfig() Config {
	return Config{
		PopulationSize: DefaultPopulationSize,
		SequenceLength: DefaultSequenceLength,
		EliteCount:     DefaultEliteCount,
		MutationRate:   DefaultMutationRate,
		BirthCount:     DefaultBirthCount,
		MaxGenerations: DefaultMaxGenerations,
	}
}

// Validate checks the parameters are usable together.
func (c Config) Validate() error {
	switch {
	case c.PopulationSize < 1:
		return fmt.Errorf("%w: population size %d", ErrConfig, c.PopulationSize)
	case c.SequenceLength < 1:
		return fmt.Errorf("%w: sequence length %d", ErrConfig, c.SequenceLength)
	case c.EliteCount < 0 || c.BirthCount < 0:
		return fmt.Errorf("%w: negative elite or birth count", ErrConfig)
	case c.EliteCount+c.BirthCount > c.PopulationSize:
		return fmt.Errorf("%w: %d elites and %d births exceed population %d",
			ErrConfig, c.EliteCount, c.BirthCount, c.PopulationSize)
	case c.MutationRate < 0 || c.MutationRate > 1:
		return fmt.Errorf("%w: mutation rate %v outside [0, 1]", ErrConfig, c.MutationRate)
	case c.MaxGenerations < 1:
		return fmt.Errorf("%w: max generations %d", ErrConfig, c.MaxGenerations)
	case c.Parallelism < 0:
		return fmt.Errorf("%w: parallelism %d", ErrConfig, c.Parallelism)
	}
	return nil
}
