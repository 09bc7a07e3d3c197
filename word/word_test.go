package word

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	w, err := New("roate")
	require.NoError(t, err)
	assert.Equal(t, "ROATE", w.String())

	_, err = New("ROAT")
	assert.ErrorIs(t, err, ErrLength)

	_, err = New("ROATES")
	assert.ErrorIs(t, err, ErrLength)

	_, err = New("RO4TE")
	assert.ErrorIs(t, err, ErrLetter)

	// letters that upper-case to a shorter encoding
	for _, s := range []string{"abcſ", "abcı", "ſabc"} {
		_, err = New(s)
		assert.ErrorIs(t, err, ErrLetter, "%q", s)
	}
}

func TestMustPanics(t *testing.T) {
	assert.Panics(t, func() { Must("toolong") })
	assert.NotPanics(t, func() { Must("SOARE") })
}

func TestJoin(t *testing.T) {
	words, err := Parse("roate", "soare")
	require.NoError(t, err)
	assert.Equal(t, "ROATE SOARE", Join(words, " "))
	assert.Equal(t, "", Join(nil, " "))
}

func TestDictionaryDedup(t *testing.T) {
	d := NewDictionary([]Word{Must("ABASE"), Must("ABATE"), Must("ABASE")})
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, 0, d.Index(Must("ABASE")))
	assert.Equal(t, 1, d.Index(Must("ABATE")))
	assert.Equal(t, -1, d.Index(Must("ABIDE")))
	assert.True(t, d.Contains(Must("ABATE")))
	assert.Equal(t, Must("ABATE"), d.At(1))
}

func TestRead(t *testing.T) {
	words, err := Read(strings.NewReader("abase\r\nAbate\nabide\n\n"))
	require.NoError(t, err)
	assert.Equal(t, []Word{Must("ABASE"), Must("ABATE"), Must("ABIDE")}, words)

	_, err = Read(strings.NewReader("abase\nabc\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLength)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("roate\nsoare\nroate\n"), 0644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
