// Package hint computes the per-letter feedback a guess receives against a
// hidden word, and checks candidate words against that feedback.
package hint

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/bent101/go-wordle-magicwords/word"
)

// Tag is the result for a single letter of a guess.
type Tag uint8

const (
	Absent  Tag = iota // gray
	Present            // yellow: in the word, elsewhere
	Correct            // green
)

// Ranks is the number of distinct feedback values (3^5).
const Ranks = 243

var ErrFeedback = errors.New("malformed feedback")

// Feedback is aligned positionally with the guess that produced it.
type Feedback [word.Length]Tag

// Evaluate returns the feedback for guess against hidden. Greens consume
// their hidden letter first so a repeated guess letter cannot claim it
// again as a yellow.
func Evaluate(guess, hidden word.Word) Feedback {
	var fb Feedback
	pool := hidden

	for i := 0; i < word.Length; i++ {
		if guess[i] == hidden[i] {
			fb[i] = Correct
			pool[i] = 0
		}
	}

	for i := 0; i < word.Length; i++ {
		if fb[i] == Correct {
			continue
		}
		if j := slices.Index(pool[:], guess[i]); j >= 0 {
			fb[i] = Present
			pool[j] = 0
		}
	}

	return fb
}

// Parse reads the textual form produced by String: x absent, y present,
// g correct, in either case.
func Parse(s string) (Feedback, error) {
	var fb Feedback
	if len(s) != word.Length {
		return fb, fmt.Errorf("%w: %q is not %d symbols", ErrFeedback, s, word.Length)
	}
	for i := 0; i < word.Length; i++ {
		switch s[i] {
		case 'x', 'X':
			fb[i] = Absent
		case 'y', 'Y':
			fb[i] = Present
		case 'g', 'G':
			fb[i] = Correct
		default:
			return fb, fmt.Errorf("%w: unknown symbol %q in %q", ErrFeedback, s[i], s)
		}
	}
	return fb, nil
}

func (fb Feedback) String() string {
	b := make([]byte, word.Length)
	for i, t := range fb {
		switch t {
		case Absent:
			b[i] = 'x'
		case Present:
			b[i] = 'Y'
		case Correct:
			b[i] = 'G'
		default:
			b[i] = '?'
		}
	}
	return string(b)
}

// Solved reports whether every letter is correct.
func (fb Feedback) Solved() bool {
	return fb == Feedback{Correct, Correct, Correct, Correct, Correct}
}

// Rank packs the feedback as a base 3 number in [0, Ranks).
func (fb Feedback) Rank() uint8 {
	var r uint8
	for _, t := range fb {
		r = r*3 + uint8(t)
	}
	return r
}

// FromRank is the inverse of Rank.
func FromRank(r uint8) Feedback {
	var fb Feedback
	for i := word.Length - 1; i >= 0; i-- {
		fb[i] = Tag(r % 3)
		r /= 3
	}
	return fb
}
