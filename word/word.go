// Package word holds the five-letter word value type and the dictionaries
// built from word lists.
package word

import (
	"errors"
	"fmt"
	"strings"
)

// Length is the number of letters in every word.
const Length = 5

var (
	ErrLength = errors.New("word is not 5 letters")
	ErrLetter = errors.New("word contains a non-alphabetic character")
)

// Word is an upper-case five-letter word. The zero value is not a valid word.
type Word [Length]byte

// New upper-cases s and validates it.
func New(s string) (Word, error) {
	var w Word
	if len(s) != Length {
		return w, fmt.Errorf("%w: %q", ErrLength, s)
	}
	for i := 0; i < Length; i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return w, fmt.Errorf("%w: %q", ErrLetter, s)
		}
		w[i] = c &^ 0x20
	}
	return w, nil
}

// Must is like New but panics on a malformed word. Intended for literals.
func Must(s string) Word {
	w, err := New(s)
	if err != nil {
		panic(err)
	}
	return w
}

// Parse converts each of ss with New, stopping at the first error.
func Parse(ss ...string) ([]Word, error) {
	words := make([]Word, 0, len(ss))
	for _, s := range ss {
		w, err := New(s)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}

func (w Word) String() string {
	return string(w[:])
}

// Join renders words separated by sep.
func Join(words []Word, sep string) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteString(sep)
		}
		b.Write(w[:])
	}
	return b.String()
}
