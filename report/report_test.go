package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/go-wordle-magicwords/genetic"
	"github.com/bent101/go-wordle-magicwords/solve"
	"github.com/bent101/go-wordle-magicwords/word"
)

func table(t *testing.T) *solve.Table {
	t.Helper()
	hidden, err := word.Parse("ABASE", "ABATE", "ABIDE", "ABODE")
	require.NoError(t, err)
	guesses, err := word.Parse("QUICK", "ABASE")
	require.NoError(t, err)
	return solve.NewTable(word.NewDictionary(guesses), word.NewDictionary(hidden), 1, nil)
}

func TestReportWriteRead(t *testing.T) {
	res := genetic.Result{
		Best:        genetic.Candidate{Sequence: []word.Word{word.Must("QUICK")}, Conflicts: 2},
		Generations: 12,
	}
	cfg := genetic.DefaultConfig()
	r := New(res, table(t), cfg)

	assert.Equal(t, []string{"QUICK"}, r.Sequence)
	assert.Equal(t, 2, r.Conflicts)
	assert.Equal(t, 3, r.Unsolved)
	assert.False(t, r.Solved)
	assert.InDelta(t, 2.5, r.AverageCandidates, 1e-9)
	assert.Equal(t, 3, r.WorstCandidates)
	assert.Equal(t, 4, r.HiddenWords)
	assert.Equal(t, 2, r.GuessWords)
	assert.Equal(t, [][]string{{"ABASE", "ABATE", "ABODE"}}, r.Collisions)
	assert.Equal(t, cfg.PopulationSize, r.Parameters.PopulationSize)

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, r.Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sequence:\n    - QUICK")

	back, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, r, back)
}

func TestReportSolvedOmitsCollisions(t *testing.T) {
	res := genetic.Result{
		Best:        genetic.Candidate{Sequence: []word.Word{word.Must("QUICK"), word.Must("ABASE")}},
		Generations: 3,
		Solved:      true,
	}
	r := New(res, table(t), genetic.DefaultConfig())
	assert.Equal(t, 0, r.Conflicts)
	assert.Equal(t, 0, r.Unsolved)
	assert.Equal(t, 1, r.WorstCandidates)
	assert.Empty(t, r.Collisions)
}

func TestPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.png")
	history := []genetic.Stats{
		{Generation: 0, Best: 9, Worst: 20, Average: 14.5},
		{Generation: 1, Best: 6, Worst: 18, Average: 11},
		{Generation: 2, Best: 6, Worst: 15, Average: 9.25},
	}
	require.NoError(t, Plot(history, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, Plot(nil, path))
}
