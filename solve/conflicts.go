// Package solve measures how well a fixed sequence of guesses tells the
// hidden words apart.
//
// Two formulations are provided. The signature form groups hidden words by
// the feedback the whole sequence produces against them and is cheap enough
// for a fitness function. The filtering form replays the sequence against
// each hidden word, narrowing the full dictionary, and is meant for
// verifying a single sequence. Both count the same thing: hidden words that
// collide with an earlier hidden word. Hidden words must be unique.
package solve

import (
	"github.com/bent101/go-wordle-magicwords/hint"
	"github.com/bent101/go-wordle-magicwords/word"
)

// Signature returns the feedback ranks seq produces against hidden, one byte
// per guess, usable as a map key.
func Signature(seq []word.Word, hidden word.Word) string {
	key := make([]byte, len(seq))
	for i, g := range seq {
		key[i] = hint.Evaluate(g, hidden).Rank()
	}
	return string(key)
}

// Conflicts returns len(hidden) minus the number of distinct signatures.
func Conflicts(seq []word.Word, hidden []word.Word) int {
	seen := make(map[string]struct{}, len(hidden))
	for _, h := range hidden {
		seen[Signature(seq, h)] = struct{}{}
	}
	return len(hidden) - len(seen)
}

// Solved reports whether seq distinguishes every hidden word.
func Solved(seq []word.Word, hidden []word.Word) bool {
	return Conflicts(seq, hidden) == 0
}

// narrow filters the whole hidden list by the evidence seq yields against h.
func narrow(seq []word.Word, h word.Word, hidden []word.Word) []word.Word {
	possible := hidden
	for _, g := range seq {
		possible = hint.Filter(hint.Evaluate(g, h), g, possible)
	}
	return possible
}

// Ambiguous is the filtering form of Conflicts. A hidden word counts when an
// earlier hidden word survives the same evidence, so each group of
// indistinguishable words contributes its size minus one.
func Ambiguous(seq []word.Word, hidden []word.Word) int {
	count := 0
	for _, h := range hidden {
		// h always survives its own evidence and survivors keep dictionary
		// order, so a different first survivor is an earlier hidden word
		if possible := narrow(seq, h, hidden); possible[0] != h {
			count++
		}
	}
	return count
}

// Unsolved counts hidden words that are not narrowed to a single candidate.
// It is zero exactly when Conflicts is zero, but counts every member of a
// colliding group.
func Unsolved(seq []word.Word, hidden []word.Word) int {
	count := 0
	for _, h := range hidden {
		if len(narrow(seq, h, hidden)) > 1 {
			count++
		}
	}
	return count
}

// Collisions returns the groups of hidden words sharing a signature, in
// order of first appearance. Singleton groups are omitted.
func Collisions(seq []word.Word, hidden []word.Word) [][]word.Word {
	groups := make(map[string]int)
	var all [][]word.Word
	for _, h := range hidden {
		sig := Signature(seq, h)
		i, ok := groups[sig]
		if !ok {
			i = len(all)
			groups[sig] = i
			all = append(all, nil)
		}
		all[i] = append(all[i], h)
	}

	var res [][]word.Word
	for _, g := range all {
		if len(g) > 1 {
			res = append(res, g)
		}
	}
	return res
}

// Evaluator scores sequences against a fixed hidden dictionary without any
// precomputation.
type Evaluator struct {
	hidden []word.Word
}

func NewEvaluator(hidden *word.Dictionary) *Evaluator {
	return &Evaluator{hidden: hidden.Words()}
}

func (e *Evaluator) Conflicts(seq []word.Word) int {
	return Conflicts(seq, e.hidden)
}
