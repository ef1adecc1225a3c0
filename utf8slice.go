// Package utf8slice slices UTF-8 text by character position rather than by byte offset.
//
// A character here is a single Unicode scalar value (a rune), not a user-perceived grapheme
// cluster: "👨‍🚀" is three characters. All results are sub-slices of the input, so nothing is
// copied; a result stays valid for as long as its source does.
//
// No function in this package fails. Indices that fall outside the text, and inverted ranges,
// produce an empty result. Callers that need to tell the two apart should compare against Len.
//
// Bytes that are not valid UTF-8 count as one character each, the same convention used by
// for-range loops and utf8.RuneCountInString.
package utf8slice

import "unicode/utf8"

// Len returns the number of characters in s.
func Len(s string) int { return utf8.RuneCountInString(s) }

// LenBytes returns the number of characters in b.
func LenBytes(b []byte) int { return utf8.RuneCount(b) }

// ByteOffset returns the byte offset at which character pos of s begins.
// For pos == Len(s) it returns len(s), the one-past-the-end boundary.
// ok is false if pos is negative or greater than Len(s).
func ByteOffset(s string, pos int) (off int, ok bool) {
	if pos < 0 {
		return 0, false
	}
	if off, ok = advance(s, 0, pos); !ok {
		return 0, false
	}
	return off, true
}

// ByteOffsetBytes is like ByteOffset but operates on a byte slice.
func ByteOffsetBytes(b []byte, pos int) (off int, ok bool) {
	if pos < 0 {
		return 0, false
	}
	if off, ok = advanceBytes(b, 0, pos); !ok {
		return 0, false
	}
	return off, true
}

// Slice returns the characters of s in the half-open interval [begin, end[.
// The result is empty if end < begin or begin >= Len(s); if end > Len(s), the result
// extends to the end of s.
//
// Slice only scans as far as the end position (or the end of s, whichever comes first).
func Slice(s string, begin, end int) string {
	if end < begin || begin < 0 {
		return ""
	}
	i, ok := advance(s, 0, begin)
	if !ok || i == len(s) {
		return ""
	}
	// Running off the end here means end >= Len(s); j is then len(s).
	j, _ := advance(s, i, end-begin)
	return s[i:j]
}

// SliceBytes is like Slice but operates on a byte slice.
// The result's capacity is limited to its length, so appending to it never
// overwrites the rest of b.
func SliceBytes(b []byte, begin, end int) []byte {
	if end < begin || begin < 0 {
		return b[:0:0]
	}
	i, ok := advanceBytes(b, 0, begin)
	if !ok || i == len(b) {
		return b[:0:0]
	}
	j, _ := advanceBytes(b, i, end-begin)
	return b[i:j:j]
}

// From returns the characters of s from position begin to the end.
// It is equivalent to Slice(s, begin, Len(s)).
func From(s string, begin int) string { return Slice(s, begin, len(s)) }

// FromBytes is like From but operates on a byte slice.
func FromBytes(b []byte, begin int) []byte { return SliceBytes(b, begin, len(b)) }

// Till returns the characters of s before position end.
// It is equivalent to Slice(s, 0, end).
func Till(s string, end int) string { return Slice(s, 0, end) }

// TillBytes is like Till but operates on a byte slice.
func TillBytes(b []byte, end int) []byte { return SliceBytes(b, 0, end) }

// advance returns the byte offset n characters after offset p, which must be a
// character boundary. If s ends first, it returns len(s) and false.
func advance(s string, p, n int) (int, bool) {
	for ; n > 0; n-- {
		if p >= len(s) {
			return len(s), false
		}
		if s[p] < utf8.RuneSelf {
			p++
			continue
		}
		_, size := utf8.DecodeRuneInString(s[p:])
		p += size
	}
	return p, true
}

func advanceBytes(b []byte, p, n int) (int, bool) {
	for ; n > 0; n-- {
		if p >= len(b) {
			return len(b), false
		}
		if b[p] < utf8.RuneSelf {
			p++
			continue
		}
		_, size := utf8.DecodeRune(b[p:])
		p += size
	}
	return p, true
}
