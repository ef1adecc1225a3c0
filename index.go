package utf8slice

import (
	"sort"
	"unicode/utf8"
)

// An Index records the character boundaries of a string so that it can be sliced repeatedly
// without rescanning it. It gives the same results as the package-level functions.
//
// An Index is immutable and safe for concurrent use.
type Index struct {
	text string
	// offsets[k] is the byte offset of character k; the last element is len(text).
	offsets []int
}

// NewIndex decodes s once and returns an Index over it.
// The boundary table is the only allocation; s itself is not copied.
func NewIndex(s string) *Index {
	offsets := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return &Index{text: s, offsets: append(offsets, len(s))}
}

// Text returns the indexed string.
func (x *Index) Text() string { return x.text }

// Len returns the number of characters in the indexed string.
func (x *Index) Len() int { return len(x.offsets) - 1 }

// ByteOffset returns the byte offset at which character pos begins. See the package-level
// ByteOffset.
func (x *Index) ByteOffset(pos int) (off int, ok bool) {
	if pos < 0 || pos >= len(x.offsets) {
		return 0, false
	}
	return x.offsets[pos], true
}

// CharAt returns the position of the character that begins at byte offset off.
// ok is false if off is not a character boundary. len(Text()) is a boundary
// and maps to Len().
func (x *Index) CharAt(off int) (pos int, ok bool) {
	pos = sort.SearchInts(x.offsets, off)
	if pos < len(x.offsets) && x.offsets[pos] == off {
		return pos, true
	}
	return 0, false
}

// Slice returns the characters in [begin, end[. See the package-level Slice.
func (x *Index) Slice(begin, end int) string {
	n := x.Len()
	if end < begin || begin < 0 || begin >= n {
		return ""
	}
	if end > n {
		end = n
	}
	return x.text[x.offsets[begin]:x.offsets[end]]
}

// From returns the characters from position begin to the end.
func (x *Index) From(begin int) string { return x.Slice(begin, x.Len()) }

// Till returns the characters before position end.
func (x *Index) Till(end int) string { return x.Slice(0, end) }
