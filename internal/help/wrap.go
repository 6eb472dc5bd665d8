package help

import (
	"unicode"
	"unicode/utf8"
)

// Line is one line of wrapped text, as offsets into the text it came from.
type Line struct {
	End     int // text[:End] is the line
	Next    int // offset of the first byte of the following line
	Columns int // characters in text[:End]
}

// NextLine finds the first line of text that fits in maxColumns columns.
//
// A newline always ends the line. Otherwise the line ends after the last
// word that fits; a word wider than maxColumns on its own is cut at exactly
// maxColumns and continues on the next line. Every decoded character is one
// column. Invalid UTF-8 bytes are skipped one at a time and take no column.
// Spaces after the break are skipped so the next line starts on a word.
func NextLine(text string, maxColumns int) Line {
	maxColumns = max(maxColumns, 1)

	var (
		col       int
		wasSpace  bool
		hasBreak  bool
		breakEnd  int // end of the last word seen
		breakCols int
		wordStart int // start of the last word seen
	)

	for i := 0; i < len(text); {
		if text[i] == '\n' {
			return skipSpaces(text, Line{End: i, Next: i + 1, Columns: col})
		}

		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size <= 1 {
			i++
			continue
		}

		isSpace := unicode.IsSpace(r)

		if col == maxColumns {
			line := Line{End: i, Next: i, Columns: col}

			switch {
			case wasSpace && hasBreak:
				line.End, line.Columns = breakEnd, breakCols
			case !isSpace && !wasSpace && hasBreak:
				line = Line{End: breakEnd, Next: wordStart, Columns: breakCols}
			}

			return skipSpaces(text, line)
		}

		switch {
		case isSpace && !wasSpace && col > 0:
			hasBreak, breakEnd, breakCols = true, i, col
		case !isSpace && wasSpace:
			wordStart = i
		}

		wasSpace = isSpace
		col++
		i += size
	}

	return Line{End: len(text), Next: len(text), Columns: col}
}

// Wrap splits text into lines of at most maxColumns columns using NextLine.
func Wrap(text string, maxColumns int) []string {
	var lines []string

	for text != "" {
		line := NextLine(text, maxColumns)
		lines = append(lines, text[:line.End])
		text = text[line.Next:]
	}

	return lines
}

func skipSpaces(text string, line Line) Line {
	for line.Next < len(text) && text[line.Next] == ' ' {
		line.Next++
	}

	return line
}
