package runesplit

import (
	"unicode"
	"unicode/utf8"
)

// Matcher decides whether a single rune belongs to a set of characters.
// Matchers must be pure: the same rune always yields the same answer, and
// evaluating a matcher has no side effects. This is what allows one matcher to
// be shared by many splitters and by concurrent splits.
//
// Matchers are total over all rune values, including invalid code points and
// combining characters, which are ordinary characters unless matched
// explicitly.
type Matcher interface {
	Matches(r rune) bool
}

// MatcherFunc adapts an ordinary function to the Matcher interface. The
// function must be pure.
type MatcherFunc func(r rune) bool

// Matches calls f(r).
func (f MatcherFunc) Matches(r rune) bool {
	return f(r)
}

// Standard matchers.
var (
	// Whitespace matches the characters with the Unicode White_Space property:
	// tab, line feed, vertical tab, form feed, carriage return, space, U+0085,
	// no-break space and the other space separators, and the line and
	// paragraph separators.
	Whitespace Matcher = MatcherFunc(isWhitespace)

	// Any matches every rune.
	Any Matcher = constMatcher(true)

	// None matches no rune.
	None Matcher = constMatcher(false)

	// ASCII matches the code points 0x00-0x7f.
	ASCII Matcher = InRange(0, utf8.RuneSelf-1)

	// Digit matches the Unicode decimal digits (general category Nd).
	Digit Matcher = InTable(unicode.Digit)
)

type constMatcher bool

func (c constMatcher) Matches(rune) bool {
	return bool(c)
}

// Is returns a matcher for exactly the rune c.
func Is(c rune) Matcher {
	return isMatcher(c)
}

type isMatcher rune

func (m isMatcher) Matches(r rune) bool {
	return r == rune(m)
}

// IsNot returns a matcher for every rune except c.
func IsNot(c rune) Matcher {
	return Not(Is(c))
}

// AnyOf returns a matcher for the runes contained in chars. An empty chars
// matches nothing.
func AnyOf(chars string) Matcher {
	switch utf8.RuneCountInString(chars) {
	case 0:
		return None
	case 1:
		r, _ := utf8.DecodeRuneInString(chars)
		return Is(r)
	}
	return newRuneSet(chars)
}

// Matches reports whether r is a member of the set.
func (s *runeSet) Matches(r rune) bool {
	return s.contains(r)
}

// NoneOf returns a matcher for the runes not contained in chars.
func NoneOf(chars string) Matcher {
	return Not(AnyOf(chars))
}

// InRange returns a matcher for the inclusive range lo..hi. If hi < lo, the
// matcher matches nothing.
func InRange(lo, hi rune) Matcher {
	if hi < lo {
		return None
	}
	return rangeMatcher{lo, hi}
}

type rangeMatcher codePointRange

func (m rangeMatcher) Matches(r rune) bool {
	return r >= m[0] && r <= m[1]
}

// InTable returns a matcher for the runes of a Unicode range table, for
// example unicode.Han or unicode.Punct.
func InTable(table *unicode.RangeTable) Matcher {
	return tableMatcher{table}
}

type tableMatcher struct {
	table *unicode.RangeTable
}

func (m tableMatcher) Matches(r rune) bool {
	return unicode.Is(m.table, r)
}

// Not returns a matcher that matches exactly where m does not. Negating a
// negation returns the original matcher.
func Not(m Matcher) Matcher {
	switch m := m.(type) {
	case negated:
		return m.m
	case constMatcher:
		return !m
	}
	return negated{m}
}

type negated struct {
	m Matcher
}

func (n negated) Matches(r rune) bool {
	return !n.m.Matches(r)
}

// Or returns a matcher that matches where m or any of others matches. The
// operands are evaluated in order and evaluation stops at the first match.
func Or(m Matcher, others ...Matcher) Matcher {
	if len(others) == 0 {
		return m
	}
	return union(append([]Matcher{m}, others...))
}

type union []Matcher

func (u union) Matches(r rune) bool {
	for _, m := range u {
		if m.Matches(r) {
			return true
		}
	}
	return false
}

// And returns a matcher that matches where m and all of others match. The
// operands are evaluated in order and evaluation stops at the first miss.
func And(m Matcher, others ...Matcher) Matcher {
	if len(others) == 0 {
		return m
	}
	return intersection(append([]Matcher{m}, others...))
}

type intersection []Matcher

func (x intersection) Matches(r rune) bool {
	for _, m := range x {
		if !m.Matches(r) {
			return false
		}
	}
	return true
}
