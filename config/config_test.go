package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/go-wordle-magicwords/genetic"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "magicwords.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, genetic.DefaultConfig(), cfg.Genetic())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[dictionary]
hidden = "answers.txt"

[optimizer]
population_size = 40
mutation_rate = 0.25
seed = 99

[output]
report = "run.yaml"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "answers.txt", cfg.Dictionary.Hidden)
	assert.Equal(t, DefaultGuessPath, cfg.Dictionary.Guess)
	assert.Equal(t, "run.yaml", cfg.Output.Report)

	g := cfg.Genetic()
	assert.Equal(t, 40, g.PopulationSize)
	assert.Equal(t, 0.25, g.MutationRate)
	assert.Equal(t, uint64(99), g.Seed)
	assert.Equal(t, genetic.DefaultSequenceLength, g.SequenceLength)
	assert.NoError(t, g.Validate())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[optimizer]\npopulation_size = \"many\"\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[optimizer]\npopulation = 10\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "optimizer.population")
}
