package runesplit

import (
	"iter"
	"slices"
)

// Sequence is a lazy, restartable sequence of tokens as returned by
// [Splitter.Split]. It can be ranged over directly:
//
//	for token := range runesplit.On(',').Split("a,b,c") {
//		fmt.Println(token)
//	}
//
// Each range over a Sequence starts a new traversal of the input, so a
// Sequence may be consumed any number of times, also concurrently.
type Sequence func(yield func(string) bool)

// Seq returns the sequence as an iter.Seq.
func (q Sequence) Seq() iter.Seq[string] {
	return iter.Seq[string](q)
}

// Strings collects the sequence into a slice. The result is non-nil.
func (q Sequence) Strings() []string {
	tokens := slices.Collect(q.Seq())
	if tokens == nil {
		tokens = []string{}
	}
	return tokens
}

// String renders the sequence with [Render].
func (q Sequence) String() string {
	return Render(q.Strings())
}
