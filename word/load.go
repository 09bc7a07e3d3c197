package word

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read parses a word list with one word per line. Trailing carriage
// returns are stripped and blank lines are skipped.
func Read(r io.Reader) ([]Word, error) {
	scanner := bufio.NewScanner(r)
	words := []Word{}
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimRight(scanner.Text(), "\r")
		if text == "" {
			continue
		}
		w, err := New(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Load reads the word list at path into a Dictionary.
func Load(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	words, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewDictionary(words), nil
}
