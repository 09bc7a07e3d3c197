package hint

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/go-wordle-magicwords/word"
)

func TestConsistentHiddenWord(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	words := randomWords(rng, 80, "ABCDE")
	for _, g := range words {
		for _, h := range words {
			assert.True(t, Consistent(Evaluate(g, h), g, h), "%s/%s", g, h)
		}
	}
}

func TestConsistentMatchesEvaluate(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	words := randomWords(rng, 40, "ABE")
	for _, g := range words {
		for _, h := range words {
			fb := Evaluate(g, h)
			for _, c := range words {
				want := Evaluate(g, c) == fb
				assert.Equal(t, want, Consistent(fb, g, c), "guess %s hidden %s candidate %s", g, h, c)
			}
		}
	}
}

func TestConsistentGrayInGreenSpot(t *testing.T) {
	guess := word.Must("EEBBB")
	fb := Evaluate(guess, word.Must("CCCEC"))
	require.Equal(t, "Yxxxx", fb.String())

	// CECCC would have turned the second E green
	assert.False(t, Consistent(fb, guess, word.Must("CECCC")))
	assert.True(t, Consistent(fb, guess, word.Must("CCECC")))
}

func TestFilter(t *testing.T) {
	candidates, err := word.Parse("ABASE", "ABATE", "ABIDE", "ABODE")
	require.NoError(t, err)

	guess := word.Must("QUICK")
	fb := Evaluate(guess, word.Must("ABATE"))
	got := Filter(fb, guess, candidates)
	assert.Equal(t, []word.Word{word.Must("ABASE"), word.Must("ABATE"), word.Must("ABODE")}, got)

	// filtering again by the same evidence changes nothing
	assert.Equal(t, got, Filter(fb, guess, got))

	fb = Evaluate(guess, word.Must("ABIDE"))
	assert.Equal(t, []word.Word{word.Must("ABIDE")}, Filter(fb, guess, candidates))
}

func TestFilterIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	words := randomWords(rng, 50, "ABCE")
	for _, g := range words[:10] {
		for _, h := range words[:10] {
			fb := Evaluate(g, h)
			once := Filter(fb, g, words)
			assert.Equal(t, once, Filter(fb, g, once))
		}
	}
}
