package runesplit

import (
	"sort"
	"unicode/utf8"
)

// codePointRange is an inclusive range of code points. Tables of ranges are
// sorted by their first code point and never overlap.
type codePointRange [2]rune

// rangeSearch performs a binary search on a sorted range table and reports
// whether r falls into one of its ranges.
func rangeSearch(table []codePointRange, r rune) bool {
	// Run a binary search.
	from := 0
	to := len(table)
	for to > from {
		middle := (from + to) / 2
		cpRange := table[middle]
		if r < cpRange[0] {
			to = middle
			continue
		}
		if r > cpRange[1] {
			from = middle + 1
			continue
		}
		return true
	}
	return false
}

// asciiSet is a bitmap over the code points 0x00-0x7f.
type asciiSet [2]uint64

func (s *asciiSet) add(r rune) {
	s[r>>6] |= 1 << uint(r&63)
}

func (s *asciiSet) contains(r rune) bool {
	return s[r>>6]&(1<<uint(r&63)) != 0
}

// runeSet is the membership table behind AnyOf. ASCII members live in a
// bitmap, everything else in a coalesced range table.
type runeSet struct {
	ascii  asciiSet
	ranges []codePointRange
}

// newRuneSet collects the runes of chars. Invalid UTF-8 bytes are collected
// as utf8.RuneError, the way ranging over the string decodes them.
func newRuneSet(chars string) *runeSet {
	set := &runeSet{}
	var others []rune
	for _, r := range chars {
		if r < utf8.RuneSelf {
			set.ascii.add(r)
			continue
		}
		others = append(others, r)
	}
	if len(others) == 0 {
		return set
	}

	sort.Slice(others, func(i, j int) bool { return others[i] < others[j] })
	for _, r := range others {
		if n := len(set.ranges); n > 0 && r <= set.ranges[n-1][1]+1 {
			if r > set.ranges[n-1][1] {
				set.ranges[n-1][1] = r
			}
			continue
		}
		set.ranges = append(set.ranges, codePointRange{r, r})
	}
	return set
}

// contains reports whether r is a member, fast tracking ASCII.
func (s *runeSet) contains(r rune) bool {
	if r >= 0 && r < utf8.RuneSelf {
		return s.ascii.contains(r)
	}
	return rangeSearch(s.ranges, r)
}

// isWhitespace reports whether r has the Unicode White_Space property while
// fast tracking ASCII characters.
func isWhitespace(r rune) bool {
	if r >= 0x21 && r <= 0x7e {
		return false
	}
	if r == ' ' || r >= '\t' && r <= '\r' {
		return true
	}
	if r < 0x85 {
		return false
	}
	return rangeSearch(whitespaceCodePoints, r)
}
