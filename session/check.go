// Package session implements the line-oriented check mode: each input line
// is a sequence of guesses, answered with 1 when the sequence tells every
// hidden word apart and 0 otherwise.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bent101/go-wordle-magicwords/word"
)

var (
	ErrUnknownGuess   = errors.New("guess is not in the guess dictionary")
	ErrMalformedGuess = errors.New("malformed guess")
)

// Scorer counts the hidden words a sequence fails to tell apart.
type Scorer interface {
	Conflicts(seq []word.Word) int
}

// Checker answers check-mode lines.
type Checker struct {
	scorer  Scorer
	guesses *word.Dictionary
	strict  bool
}

// NewChecker returns a checker. In strict mode every guess must be in
// guesses; otherwise guesses may be nil.
func NewChecker(scorer Scorer, guesses *word.Dictionary, strict bool) *Checker {
	return &Checker{scorer: scorer, guesses: guesses, strict: strict}
}

// Parse splits a line into guesses, validating them.
func (c *Checker) Parse(line string) ([]word.Word, error) {
	fields := strings.Fields(line)
	seq := make([]word.Word, 0, len(fields))
	for _, f := range fields {
		w, err := word.New(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedGuess, err)
		}
		if c.strict && !c.guesses.Contains(w) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownGuess, w)
		}
		seq = append(seq, w)
	}
	return seq, nil
}

// Check reports whether the guesses on line distinguish every hidden word.
func (c *Checker) Check(line string) (bool, error) {
	seq, err := c.Parse(line)
	if err != nil {
		return false, err
	}
	return c.scorer.Conflicts(seq) == 0, nil
}

// Run answers lines from r until a blank line or end of input. Each line is
// echoed to diag before its answer is written to out. The first invalid
// line ends the session with its error.
func (c *Checker) Run(r io.Reader, out, diag io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			return nil
		}
		fmt.Fprintln(diag, line)

		ok, err := c.Check(line)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintln(out, 1)
		} else {
			fmt.Fprintln(out, 0)
		}
	}
	return scanner.Err()
}
