// Package inspect describes the character boundaries of a text, one row per character.
package inspect

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"unicode"
	"unicode/utf8"

	"github.com/dpinela/utf8slice"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

// A Row describes one character.
type Row struct {
	Pos    int  // Character position
	Offset int  // Byte offset of the first byte
	Size   int  // Encoded length in bytes
	Width  int  // Monospace display width; 0 for invalid bytes
	Rune   rune // utf8.RuneError if Valid is false
	Valid  bool // Whether the bytes are a valid UTF-8 encoding
	Raw    string
}

// Rows returns a Row for every character in x.
func Rows(x *utf8slice.Index) []Row {
	rows := make([]Row, x.Len())
	text := x.Text()
	for i := range rows {
		off, _ := x.ByteOffset(i)
		end, _ := x.ByteOffset(i + 1)
		r, _ := utf8.DecodeRuneInString(text[off:end])
		row := Row{Pos: i, Offset: off, Size: end - off, Rune: r, Raw: text[off:end]}
		// A literal U+FFFD is three bytes long; an invalid byte decodes to it with size 1.
		row.Valid = r != utf8.RuneError || row.Size > 1
		if row.Valid {
			row.Width = runewidth.RuneWidth(r)
		}
		rows[i] = row
	}
	return rows
}

// CodePoint returns the U+XXXX form of the row's rune, or "invalid".
func (r Row) CodePoint() string {
	if !r.Valid {
		return "invalid"
	}
	return fmt.Sprintf("%U", r.Rune)
}

// Display returns a printable rendering of the character: the character itself, or
// its quoted escape if it's invisible on its own.
func (r Row) Display() string {
	switch {
	case !r.Valid:
		return strconv.Quote(r.Raw)
	case r.Width == 0 || !unicode.IsPrint(r.Rune):
		return strconv.QuoteRuneToASCII(r.Rune)
	}
	return r.Raw
}

// Write prints rows as an aligned table, preceded by a column header if header is set.
func Write(w io.Writer, rows []Row, header bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	if header {
		fmt.Fprint(tw, "POS\tBYTE\tSIZE\tWIDTH\tCODE\t CHAR\n")
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\t %s\n", r.Pos, r.Offset, r.Size, r.Width, r.CodePoint(), r.Display())
	}
	return errors.Wrap(tw.Flush(), "writing boundary table")
}
