// Command check reads sequences of guesses from stdin, one per line, and
// prints 1 when a sequence tells every hidden word apart and 0 otherwise.
// A blank line ends the session.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/bent101/go-wordle-magicwords/config"
	"github.com/bent101/go-wordle-magicwords/hint"
	"github.com/bent101/go-wordle-magicwords/session"
	"github.com/bent101/go-wordle-magicwords/solve"
	"github.com/bent101/go-wordle-magicwords/word"
)

const (
	exitFailure        = 1
	exitUnknownGuess   = 2
	exitMalformedGuess = 3
)

var (
	hiddenPath = flag.String("hidden", config.DefaultHiddenPath, "hidden word list")
	guessPath  = flag.String("guess", config.DefaultGuessPath, "guess word list")
	strict     = flag.Bool("strict", true, "reject guesses missing from the guess word list")
	hintsWord  = flag.String("hints", "", "print the feedback buckets of `word` and exit")
)

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	hidden, err := word.Load(*hiddenPath)
	if err != nil {
		log.Printf("check: %v", err)
		os.Exit(exitFailure)
	}
	log.Printf("Words in Hidden Dictionary: %d", hidden.Len())

	if *hintsWord != "" {
		if err := printHints(*hintsWord, hidden); err != nil {
			log.Printf("check: %v", err)
			os.Exit(exitMalformedGuess)
		}
		return
	}

	var guesses *word.Dictionary
	if *strict {
		guesses, err = word.Load(*guessPath)
		if err != nil {
			log.Printf("check: %v", err)
			os.Exit(exitFailure)
		}
		log.Printf("Words in Guess Dictionary: %d", guesses.Len())
	}

	checker := session.NewChecker(solve.NewEvaluator(hidden), guesses, *strict)
	err = checker.Run(os.Stdin, os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, session.ErrUnknownGuess):
		log.Printf("check: %v", err)
		os.Exit(exitUnknownGuess)
	case errors.Is(err, session.ErrMalformedGuess):
		log.Printf("check: %v", err)
		os.Exit(exitMalformedGuess)
	default:
		log.Printf("check: %v", err)
		os.Exit(exitFailure)
	}
}

// printHints shows how one guess splits the hidden words, largest group first
func printHints(s string, hidden *word.Dictionary) error {
	g, err := word.New(s)
	if err != nil {
		return err
	}
	table := solve.NewTable(word.NewDictionary([]word.Word{g}), hidden, 1, nil)
	for _, b := range table.Buckets(g) {
		fmt.Println(hint.Colored(g, b.Feedback), len(b.Words))
	}
	return nil
}
