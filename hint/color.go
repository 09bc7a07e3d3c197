package hint

import (
	"strings"

	"github.com/mitchellh/colorstring"

	"github.com/bent101/go-wordle-magicwords/word"
)

// Colored renders guess with a terminal background color per letter.
func Colored(guess word.Word, fb Feedback) string {
	var b strings.Builder
	for i, t := range fb {
		switch t {
		case Absent:
			b.WriteString("[white][on_dark_gray]")
		case Present:
			b.WriteString("[black][on_yellow]")
		case Correct:
			b.WriteString("[black][on_green]")
		}
		b.WriteByte(guess[i])
		b.WriteString(" [reset]")
	}
	return colorstring.Color(b.String())
}
