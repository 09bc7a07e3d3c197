// Package genetic searches for a fixed sequence of guesses that tells every
// hidden word apart, evolving a population of sequences scored by conflict
// count.
package genetic

import (
	"context"
	"math/rand/v2"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/bent101/go-wordle-magicwords/word"
)

// Optimizer runs the evolutionary search. It is not safe for concurrent use;
// only fitness evaluation inside a generation runs in parallel.
type Optimizer struct {
	scorer  Scorer
	guesses []word.Word
	config  Config

	rng          *rand.Rand
	history      []Stats
	onGeneration func(*Population)
}

// New creates an optimizer drawing guesses from the guess dictionary.
func New(scorer Scorer, guesses *word.Dictionary, config Config) (*Optimizer, error) {
	if guesses.Len() == 0 {
		return nil, ErrEmptyDictionary
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Parallelism == 0 {
		config.Parallelism = runtime.NumCPU()
	}

	var rng *rand.Rand
	if config.Seed == 0 {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	} else {
		rng = rand.New(rand.NewPCG(config.Seed, config.Seed))
	}

	return &Optimizer{
		scorer:  scorer,
		guesses: guesses.Words(),
		config:  config,
		rng:     rng,
	}, nil
}

// OnGeneration registers a callback invoked after each generation is ranked.
// The population must not be modified or retained.
func (o *Optimizer) OnGeneration(fn func(*Population)) {
	o.onGeneration = fn
}

// History returns the statistics of every evaluated generation
func (o *Optimizer) History() []Stats {
	return o.history
}

// Run evolves until a zero-conflict sequence is found or MaxGenerations
// generations have been evaluated. Exhausting the budget is not an error.
// On context cancellation the best candidate of the last ranked generation
// is returned along with ctx.Err().
func (o *Optimizer) Run(ctx context.Context) (Result, error) {
	var res Result
	pop := o.initialize()

	for {
		if err := o.evaluate(ctx, pop); err != nil {
			return res, err
		}
		o.rank(pop)

		o.history = append(o.history, pop.stats())
		if o.onGeneration != nil {
			o.onGeneration(pop)
		}

		best := pop.Members[0]
		res = Result{
			Best:        best.clone(),
			Generations: pop.Generation + 1,
			Solved:      best.Conflicts == 0,
		}
		if res.Solved || res.Generations >= o.config.MaxGenerations {
			return res, nil
		}

		if err := ctx.Err(); err != nil {
			return res, err
		}

		pop = o.evolve(pop)
	}
}

func (o *Optimizer) randomWord() word.Word {
	return o.guesses[o.rng.IntN(len(o.guesses))]
}

func (o *Optimizer) randomSequence() []word.Word {
	seq := make([]word.Word, o.config.SequenceLength)
	for i := range seq {
		seq[i] = o.randomWord()
	}
	return seq
}

// initialize creates the first generation of random candidates
func (o *Optimizer) initialize() *Population {
	members := make([]Candidate, o.config.PopulationSize)
	for i := range members {
		members[i] = Candidate{Sequence: o.randomSequence()}
	}
	return &Population{Members: members}
}

// evaluate scores every unscored candidate in parallel and waits for all of
// them before returning
func (o *Optimizer) evaluate(ctx context.Context, pop *Population) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.config.Parallelism)

	for i := range pop.Members {
		c := &pop.Members[i]
		if c.scored {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c.Conflicts = o.scorer.Conflicts(c.Sequence)
			c.scored = true
			return nil
		})
	}

	return g.Wait()
}

// rank sorts ascending by conflicts, keeping prior order among ties
func (o *Optimizer) rank(pop *Population) {
	sort.SliceStable(pop.Members, func(i, j int) bool {
		return pop.Members[i].Conflicts < pop.Members[j].Conflicts
	})
}

// evolve builds the next generation from a ranked one: elites copied as is,
// single-point crossover children from parents drawn across the whole
// population, mutation of non-elite children, then fresh random births in
// the last slots.
func (o *Optimizer) evolve(cur *Population) *Population {
	n := o.config.PopulationSize
	elite := o.config.EliteCount
	firstBirth := n - o.config.BirthCount

	next := &Population{
		Members:    make([]Candidate, n),
		Generation: cur.Generation + 1,
	}

	for i := 0; i < elite; i++ {
		next.Members[i] = cur.Members[i].clone()
	}

	for i := elite; i < firstBirth; i++ {
		p1 := cur.Members[o.rng.IntN(n)].Sequence
		p2 := cur.Members[o.rng.IntN(n)].Sequence
		next.Members[i] = Candidate{Sequence: o.crossover(p1, p2)}
	}

	// slot 0 is never mutated, even without elitism
	for i := max(elite, 1); i < firstBirth; i++ {
		if o.rng.Float64() < o.config.MutationRate {
			o.mutate(next.Members[i].Sequence)
		}
	}

	for i := firstBirth; i < n; i++ {
		next.Members[i] = Candidate{Sequence: o.randomSequence()}
	}

	return next
}

// crossover takes positions [0, spos] from p1 and the rest from p2, with
// spos in [0, len-2]. Single-guess sequences have no split point and copy p1.
func (o *Optimizer) crossover(p1, p2 []word.Word) []word.Word {
	k := len(p1)
	child := make([]word.Word, k)
	if k < 2 {
		copy(child, p1)
		return child
	}

	spos := o.rng.IntN(k - 1)
	for j := range child {
		if j <= spos {
			child[j] = p1[j]
		} else {
			child[j] = p2[j]
		}
	}
	return child
}

// mutate replaces one random position with a random guess word
func (o *Optimizer) mutate(seq []word.Word) {
	seq[o.rng.IntN(len(seq))] = o.randomWord()
}
