// Command magicwords searches for a fixed sequence of guesses that tells
// every hidden word apart.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/pprof"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/bent101/go-wordle-magicwords/config"
	"github.com/bent101/go-wordle-magicwords/genetic"
	"github.com/bent101/go-wordle-magicwords/report"
	"github.com/bent101/go-wordle-magicwords/solve"
	"github.com/bent101/go-wordle-magicwords/word"
)

var (
	configPath  = flag.String("config", "", "TOML config file")
	hiddenPath  = flag.String("hidden", config.DefaultHiddenPath, "hidden word list")
	guessPath   = flag.String("guess", config.DefaultGuessPath, "guess word list")
	popSize     = flag.Int("pop", genetic.DefaultPopulationSize, "population size")
	seqLen      = flag.Int("len", genetic.DefaultSequenceLength, "guesses per sequence")
	elite       = flag.Int("elite", genetic.DefaultEliteCount, "elite candidates kept per generation")
	mutation    = flag.Float64("mutation", genetic.DefaultMutationRate, "mutation rate")
	births      = flag.Int("births", genetic.DefaultBirthCount, "random candidates injected per generation")
	generations = flag.Int("generations", genetic.DefaultMaxGenerations, "maximum generations")
	parallel    = flag.Int("parallel", 0, "concurrent evaluations (0 for NumCPU)")
	seed        = flag.Uint64("seed", 0, "random seed (0 for random)")
	cachePath   = flag.String("cache", "", "feedback table cache file")
	reportPath  = flag.String("report", "", "write a YAML report to `file`")
	plotPath    = flag.String("plot", "", "write a conflicts-per-generation plot to `file`")
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to `file`")
)

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ltime)

	if err := run(); err != nil {
		log.Printf("magicwords: %v", err)
		os.Exit(1)
	}
}

// applyFlags overrides config values with flags given on the command line
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "hidden":
			cfg.Dictionary.Hidden = *hiddenPath
		case "guess":
			cfg.Dictionary.Guess = *guessPath
		case "pop":
			cfg.Optimizer.PopulationSize = *popSize
		case "len":
			cfg.Optimizer.SequenceLength = *seqLen
		case "elite":
			cfg.Optimizer.EliteCount = *elite
		case "mutation":
			cfg.Optimizer.MutationRate = *mutation
		case "births":
			cfg.Optimizer.BirthCount = *births
		case "generations":
			cfg.Optimizer.MaxGenerations = *generations
		case "parallel":
			cfg.Optimizer.Parallelism = *parallel
		case "seed":
			cfg.Optimizer.Seed = *seed
		case "cache":
			cfg.Output.Cache = *cachePath
		case "report":
			cfg.Output.Report = *reportPath
		case "plot":
			cfg.Output.Plot = *plotPath
		}
	})
}

func run() error {
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	applyFlags(&cfg)

	hidden, err := word.Load(cfg.Dictionary.Hidden)
	if err != nil {
		return err
	}
	guesses, err := word.Load(cfg.Dictionary.Guess)
	if err != nil {
		return err
	}
	log.Printf("Words in Hidden Dictionary: %d", hidden.Len())
	log.Printf("Words in Guess Dictionary: %d", guesses.Len())

	table := loadTable(cfg.Output.Cache, guesses, hidden, cfg.Optimizer.Parallelism)

	gcfg := cfg.Genetic()
	opt, err := genetic.New(table, guesses, gcfg)
	if err != nil {
		return err
	}
	opt.OnGeneration(printBest)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	res, err := opt.Run(ctx)
	switch {
	case errors.Is(err, context.Canceled):
		log.Printf("interrupted after %d generations", res.Generations)
		if res.Generations == 0 {
			return nil
		}
	case err != nil:
		return err
	}

	fmt.Println()
	if res.Solved {
		log.Printf("solved in %d generations (%v)", res.Generations, time.Since(start))
	} else {
		log.Printf("best after %d generations leaves %d conflicts (%v)",
			res.Generations, res.Best.Conflicts, time.Since(start))
	}

	if cfg.Output.Report != "" {
		if err := report.New(res, table, gcfg).Write(cfg.Output.Report); err != nil {
			return err
		}
		log.Printf("wrote report to %s", cfg.Output.Report)
	}
	if cfg.Output.Plot != "" {
		if err := report.Plot(opt.History(), cfg.Output.Plot); err != nil {
			return err
		}
		log.Printf("wrote plot to %s", cfg.Output.Plot)
	}
	return nil
}

func printBest(p *genetic.Population) {
	best := p.Members[0]
	fmt.Printf("Iter:\t%d\tBest:\t%s\tConflicts:\t%d\n",
		p.Generation, word.Join(best.Sequence, " "), best.Conflicts)
}

// loadTable reads the feedback table from the cache if possible, otherwise
// computes it and refreshes the cache.
func loadTable(path string, guesses, hidden *word.Dictionary, workers int) *solve.Table {
	if path != "" {
		start := time.Now()
		table, err := solve.LoadTable(path, guesses, hidden)
		if err == nil {
			log.Printf("loaded feedback table from %s in %v", path, time.Since(start))
			return table
		}
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("ignoring table cache: %v", err)
		}
	}

	log.Printf("calculating hints for %d guess-answer pairs", guesses.Len()*hidden.Len())
	bar := progressbar.NewOptions(guesses.Len(),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("feedback table"),
		progressbar.OptionSetVisibility(term.IsTerminal(int(os.Stderr.Fd()))),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	table := solve.NewTable(guesses, hidden, workers, bar)
	bar.Finish()

	if path != "" {
		start := time.Now()
		if err := table.Save(path); err != nil {
			log.Printf("could not save table cache: %v", err)
		} else {
			log.Printf("saved feedback table to %s in %v", path, time.Since(start))
		}
	}
	return table
}
