package solve

import (
	"runtime"
	"sort"

	"github.com/bits-and-blooms/bitset"
	"github.com/schollz/progressbar/v3"
	"github.com/sourcegraph/conc/pool"

	"github.com/bent101/go-wordle-magicwords/hint"
	"github.com/bent101/go-wordle-magicwords/word"
)

// Table holds the feedback rank of every guess word against every hidden
// word, so scoring a sequence is a lookup per (guess, hidden) pair.
// A Table is read-only after construction and safe for concurrent use.
type Table struct {
	guesses *word.Dictionary
	hidden  *word.Dictionary
	ranks   [][]uint8 // [guess index][hidden index]
}

// NewTable computes the table with up to workers goroutines. bar, if not
// nil, advances once per guess word.
func NewTable(guesses, hidden *word.Dictionary, workers int, bar *progressbar.ProgressBar) *Table {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	t := &Table{
		guesses: guesses,
		hidden:  hidden,
		ranks:   make([][]uint8, guesses.Len()),
	}

	p := pool.New().WithMaxGoroutines(workers)
	for gi, g := range guesses.Words() {
		p.Go(func() {
			t.ranks[gi] = row(g, hidden.Words())
			if bar != nil {
				bar.Add(1)
			}
		})
	}
	p.Wait()

	return t
}

func row(g word.Word, hidden []word.Word) []uint8 {
	r := make([]uint8, len(hidden))
	for hi, h := range hidden {
		r[hi] = hint.Evaluate(g, h).Rank()
	}
	return r
}

func (t *Table) Guesses() *word.Dictionary { return t.guesses }

func (t *Table) Hidden() *word.Dictionary { return t.hidden }

// rows returns the rank rows for seq. Words missing from the guess
// dictionary are computed on the fly.
func (t *Table) rows(seq []word.Word) [][]uint8 {
	rows := make([][]uint8, len(seq))
	for i, g := range seq {
		if gi := t.guesses.Index(g); gi >= 0 {
			rows[i] = t.ranks[gi]
		} else {
			rows[i] = row(g, t.hidden.Words())
		}
	}
	return rows
}

// Conflicts is the table-backed signature form.
func (t *Table) Conflicts(seq []word.Word) int {
	rows := t.rows(seq)
	n := t.hidden.Len()
	seen := make(map[string]struct{}, n)
	key := make([]byte, len(rows))
	for hi := 0; hi < n; hi++ {
		for i, r := range rows {
			key[i] = r[hi]
		}
		seen[string(key)] = struct{}{}
	}
	return n - len(seen)
}

// buckets splits the hidden words by the feedback one row assigns them.
func (t *Table) buckets(r []uint8) [hint.Ranks]*bitset.BitSet {
	var b [hint.Ranks]*bitset.BitSet
	n := uint(t.hidden.Len())
	for hi, rank := range r {
		if b[rank] == nil {
			b[rank] = bitset.New(n)
		}
		b[rank].Set(uint(hi))
	}
	return b
}

// narrow intersects, for each hidden word, the buckets it lands in.
func (t *Table) narrow(seq []word.Word, visit func(hi int, possible *bitset.BitSet)) {
	rows := t.rows(seq)
	buckets := make([][hint.Ranks]*bitset.BitSet, len(rows))
	for i, r := range rows {
		buckets[i] = t.buckets(r)
	}

	n := t.hidden.Len()
	for hi := 0; hi < n; hi++ {
		possible := bitset.New(uint(n)).Complement()
		for i, r := range rows {
			possible.InPlaceIntersection(buckets[i][r[hi]])
		}
		visit(hi, possible)
	}
}

// Ambiguous is the table-backed filtering form, using bitset candidate sets.
func (t *Table) Ambiguous(seq []word.Word) int {
	count := 0
	t.narrow(seq, func(hi int, possible *bitset.BitSet) {
		if first, ok := possible.NextSet(0); ok && first < uint(hi) {
			count++
		}
	})
	return count
}

// Unsolved counts hidden words left with more than one candidate.
func (t *Table) Unsolved(seq []word.Word) int {
	count := 0
	t.narrow(seq, func(_ int, possible *bitset.BitSet) {
		if possible.Count() > 1 {
			count++
		}
	})
	return count
}

// Spread reports how many candidates remain, on average and at worst, after
// playing seq against each hidden word. A perfect sequence gives 1 and 1.
func (t *Table) Spread(seq []word.Word) (avg float64, worst int) {
	n := t.hidden.Len()
	if n == 0 {
		return 0, 0
	}
	var tot int
	t.narrow(seq, func(_ int, possible *bitset.BitSet) {
		c := int(possible.Count())
		tot += c
		worst = max(worst, c)
	})
	return float64(tot) / float64(n), worst
}

// Bucket is the set of hidden words that give the same feedback to a guess.
type Bucket struct {
	Feedback hint.Feedback
	Words    []word.Word
}

// Buckets groups the hidden words by the feedback guess receives, largest
// group first.
func (t *Table) Buckets(guess word.Word) []Bucket {
	rows := t.rows([]word.Word{guess})
	var res []Bucket
	for rank, set := range t.buckets(rows[0]) {
		if set == nil {
			continue
		}
		b := Bucket{Feedback: hint.FromRank(uint8(rank))}
		for hi, ok := set.NextSet(0); ok; hi, ok = set.NextSet(hi + 1) {
			b.Words = append(b.Words, t.hidden.At(int(hi)))
		}
		res = append(res, b)
	}

	sort.SliceStable(res, func(i, j int) bool {
		return len(res[i].Words) > len(res[j].Words)
	})
	return res
}
