package solve

import (
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/bent101/go-wordle-magicwords/word"
)

var ErrStaleCache = errors.New("table cache does not match dictionaries")

type tableFile struct {
	Digest string
	Ranks  [][]uint8
}

// Digest identifies the dictionary pair a table was computed for.
func Digest(guesses, hidden *word.Dictionary) string {
	h := sha256.New()
	for _, w := range guesses.Words() {
		h.Write(w[:])
	}
	h.Write([]byte{'\n'})
	for _, w := range hidden.Words() {
		h.Write(w[:])
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:8])
}

// Save writes the table to path as gob.
func (t *Table) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	data := tableFile{Digest: Digest(t.guesses, t.hidden), Ranks: t.ranks}
	if err := gob.NewEncoder(file).Encode(data); err != nil {
		return fmt.Errorf("encoding table cache: %w", err)
	}
	return file.Close()
}

// LoadTable reads a table saved by Save. It returns ErrStaleCache when the
// file was written for different dictionaries.
func LoadTable(path string, guesses, hidden *word.Dictionary) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var data tableFile
	if err := gob.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding table cache: %w", err)
	}
	if data.Digest != Digest(guesses, hidden) || len(data.Ranks) != guesses.Len() {
		return nil, ErrStaleCache
	}
	for _, r := range data.Ranks {
		if len(r) != hidden.Len() {
			return nil, ErrStaleCache
		}
	}

	return &Table{guesses: guesses, hidden: hidden, ranks: data.Ranks}, nil
}
