package hint

import (
	"golang.org/x/exp/slices"

	"github.com/bent101/go-wordle-magicwords/word"
)

// Consistent reports whether candidate could be the hidden word given that
// guess received fb. Greens are checked first, then yellows, then grays,
// consuming matched candidate letters along the way.
func Consistent(fb Feedback, guess, candidate word.Word) bool {
	pool := candidate

	for i := 0; i < word.Length; i++ {
		if fb[i] == Correct {
			if guess[i] != candidate[i] {
				return false
			}
			pool[i] = 0
		}
	}

	for i := 0; i < word.Length; i++ {
		if fb[i] != Present {
			continue
		}
		// same letter in the same spot would have been green
		if guess[i] == candidate[i] {
			return false
		}
		j := slices.Index(pool[:], guess[i])
		if j < 0 {
			return false
		}
		pool[j] = 0
	}

	for i := 0; i < word.Length; i++ {
		if fb[i] != Absent {
			continue
		}
		if guess[i] == candidate[i] || slices.Contains(pool[:], guess[i]) {
			return false
		}
	}

	return true
}

// Filter returns the candidates consistent with fb, in input order.
func Filter(fb Feedback, guess word.Word, candidates []word.Word) []word.Word {
	var res []word.Word
	for _, c := range candidates {
		if Consistent(fb, guess, c) {
			res = append(res, c)
		}
	}
	return res
}
