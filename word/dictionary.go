package word

// Dictionary is an ordered, read-only collection of unique words.
// It is safe for concurrent use once built.
type Dictionary struct {
	words []Word
	index map[Word]int
}

// NewDictionary builds a dictionary from words, keeping the first
// occurrence of any duplicate.
func NewDictionary(words []Word) *Dictionary {
	d := &Dictionary{
		words: make([]Word, 0, len(words)),
		index: make(map[Word]int, len(words)),
	}
	for _, w := range words {
		if _, ok := d.index[w]; ok {
			continue
		}
		d.index[w] = len(d.words)
		d.words = append(d.words, w)
	}
	return d
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns the backing slice. Callers must not modify it.
func (d *Dictionary) Words() []Word {
	return d.words
}

func (d *Dictionary) At(i int) Word {
	return d.words[i]
}

// Index returns the position of w, or -1.
func (d *Dictionary) Index(w Word) int {
	if i, ok := d.index[w]; ok {
		return i
	}
	return -1
}

func (d *Dictionary) Contains(w Word) bool {
	_, ok := d.index[w]
	return ok
}
