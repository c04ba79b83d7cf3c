package runesplit

import (
	"strconv"
	"strings"
)

// delimiter locates the next boundary of str at or after byte offset from.
// The boundary is the half-open byte range [start, end) that separates two
// tokens. If there is no further boundary, start is negative.
type delimiter interface {
	next(str string, from int) (start, end int)
	String() string
}

// literalDelimiter matches an exact, non-empty substring. Single-rune
// delimiters are literals of that rune's UTF-8 encoding.
type literalDelimiter string

func (d literalDelimiter) next(str string, from int) (start, end int) {
	i := strings.Index(str[from:], string(d))
	if i < 0 {
		return -1, -1
	}
	start = from + i
	return start, start + len(d)
}

func (d literalDelimiter) String() string {
	return strconv.Quote(string(d))
}

// runDelimiter matches the maximal run of consecutive runes satisfying m,
// starting at the first rune that satisfies it.
type runDelimiter struct {
	m Matcher
}

func (d runDelimiter) next(str string, from int) (start, end int) {
	start = -1
	for i, r := range str[from:] {
		if d.m.Matches(r) {
			if start < 0 {
				start = from + i
			}
			continue
		}
		if start >= 0 {
			return start, from + i
		}
	}
	if start < 0 {
		return -1, -1
	}
	return start, len(str)
}

func (d runDelimiter) String() string {
	return "matcher"
}
