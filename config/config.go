// Package config loads run settings for the command line tools.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/bent101/go-wordle-magicwords/genetic"
)

const (
	DefaultHiddenPath = "words.txt"
	DefaultGuessPath  = "words_full.txt"
)

type Dictionary struct {
	Hidden string `toml:"hidden"`
	Guess  string `toml:"guess"`
}

type Optimizer struct {
	PopulationSize int     `toml:"population_size"`
	SequenceLength int     `toml:"sequence_length"`
	EliteCount     int     `toml:"elite_count"`
	MutationRate   float64 `toml:"mutation_rate"`
	BirthCount     int     `toml:"birth_count"`
	MaxGenerations int     `toml:"max_generations"`
	Parallelism    int     `toml:"parallelism"`
	Seed           uint64  `toml:"seed"`
}

type Output struct {
	// Cache is the feedback table cache file; empty disables caching
	Cache string `toml:"cache"`
	// Report is the YAML report path; empty disables the report
	Report string `toml:"report"`
	// Plot is the PNG fitness plot path; empty disables the plot
	Plot string `toml:"plot"`
}

type Config struct {
	Dictionary Dictionary `toml:"dictionary"`
	Optimizer  Optimizer  `toml:"optimizer"`
	Output     Output     `toml:"output"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	g := genetic.DefaultConfig()
	return Config{
		Dictionary: Dictionary{
			Hidden: DefaultHiddenPath,
			Guess:  DefaultGuessPath,
		},
		Optimizer: Optimizer{
			PopulationSize: g.PopulationSize,
			SequenceLength: g.SequenceLength,
			EliteCount:     g.EliteCount,
			MutationRate:   g.MutationRate,
			BirthCount:     g.BirthCount,
			MaxGenerations: g.MaxGenerations,
			Parallelism:    g.Parallelism,
			Seed:           g.Seed,
		},
	}
}

// Load decodes the TOML file at path over the defaults, so keys left out of
// the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// Genetic converts the optimizer section.
func (c Config) Genetic() genetic.Config {
	o := c.Optimizer
	return genetic.Config{
		PopulationSize: o.PopulationSize,
		SequenceLength: o.SequenceLength,
		EliteCount:     o.EliteCount,
		MutationRate:   o.MutationRate,
		BirthCount:     o.BirthCount,
		MaxGenerations: o.MaxGenerations,
		Parallelism:    o.Parallelism,
		Seed:           o.Seed,
	}
}
