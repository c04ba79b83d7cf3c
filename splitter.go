package runesplit

import "fmt"

// Splitter splits strings into tokens around a delimiter. A Splitter is an
// immutable value: the option methods return a modified copy and never change
// the receiver, so a base splitter can be shared and specialized freely.
//
//	csv := runesplit.On(',')
//	fields := csv.TrimResults().OmitEmptyStrings()
//
// Here csv still splits without trimming or omission.
//
// A Splitter may be used from multiple goroutines. The zero Splitter has no
// delimiter and yields its whole input as a single token.
type Splitter struct {
	delim     delimiter
	trim      Matcher // nil means no trimming
	omitEmpty bool
	limit     int // 0 means unlimited
}

// On returns a splitter that uses the rune c as its delimiter.
func On(c rune) Splitter {
	return Splitter{delim: literalDelimiter(string(c))}
}

// OnString returns a splitter that uses the literal string sep as its
// delimiter. An empty sep is rejected with an error wrapping
// ErrInvalidArgument: it would never advance past any position.
func OnString(sep string) (Splitter, error) {
	if sep == "" {
		return Splitter{}, newArgumentError("empty delimiter")
	}
	return Splitter{delim: literalDelimiter(sep)}, nil
}

// MustOnString is like OnString but panics if sep is empty. It simplifies
// the initialization of global variables holding splitters.
func MustOnString(sep string) Splitter {
	sp, err := OnString(sep)
	if err != nil {
		panic(err)
	}
	return sp
}

// OnMatcher returns a splitter that treats any run of consecutive runes
// matching m as one delimiter. Splitting "a \t b" on Whitespace yields
// "a" and "b" without an empty token in between.
func OnMatcher(m Matcher) Splitter {
	if m == nil {
		m = None
	}
	return Splitter{delim: runDelimiter{m}}
}

// OmitEmptyStrings returns a copy of the splitter that drops empty tokens.
// With TrimResults, a token is checked for emptiness after trimming.
func (sp Splitter) OmitEmptyStrings() Splitter {
	sp.omitEmpty = true
	return sp
}

// TrimResults returns a copy of the splitter that removes leading and
// trailing Whitespace from every token.
func (sp Splitter) TrimResults() Splitter {
	return sp.TrimResultsWith(Whitespace)
}

// TrimResultsWith returns a copy of the splitter that removes leading and
// trailing runes matching m from every token. Trimming happens after a token
// has been isolated and never moves a boundary. A nil m disables trimming.
func (sp Splitter) TrimResultsWith(m Matcher) Splitter {
	sp.trim = m
	return sp
}

// Limit returns a copy of the splitter that stops splitting once n tokens
// have been produced: the n-th token holds the rest of the input, including
// any delimiters in it. Trimming still applies to the rest's ends. Limit
// panics if n is not positive.
func (sp Splitter) Limit(n int) Splitter {
	if n <= 0 {
		panic(newArgumentError("limit must be positive, got %d", n))
	}
	sp.limit = n
	return sp
}

// Split returns the tokens of str as a lazy sequence. Tokens are found as the
// sequence is consumed, and every range over it starts a new traversal from
// the beginning of str.
func (sp Splitter) Split(str string) Sequence {
	return func(yield func(string) bool) {
		t := sp.Tokens(str)
		for t.Next() {
			if !yield(t.Str()) {
				return
			}
		}
	}
}

// SplitToList returns all tokens of str in order.
func (sp Splitter) SplitToList(str string) []string {
	tokens := make([]string, 0, 4)
	t := sp.Tokens(str)
	for t.Next() {
		tokens = append(tokens, t.Str())
	}
	return tokens
}

// Tokens returns an iterator over the tokens of str.
func (sp Splitter) Tokens(str string) *Tokens {
	return &Tokens{splitter: sp, original: str}
}

// String describes the splitter's configuration.
func (sp Splitter) String() string {
	delim := "none"
	if sp.delim != nil {
		delim = sp.delim.String()
	}
	return fmt.Sprintf("Splitter{on: %s, trim: %t, omitEmpty: %t, limit: %d}", delim, sp.trim != nil, sp.omitEmpty, sp.limit)
}
