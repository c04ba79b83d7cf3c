package runesplit

import "unicode/utf8"

// Tokens is an iterator over the tokens of a string, created by
// [Splitter.Tokens]. It is a small state machine: a cursor into the input and
// a done flag. Each call to [Tokens.Next] performs one step, searching for the
// next boundary from the cursor. Tokens are substrings of the input; nothing
// is copied.
//
//	t := runesplit.On(',').Tokens("a,b,c")
//	for t.Next() {
//		fmt.Println(t.Str())
//	}
//
// A Tokens value must not be used from multiple goroutines at once. Iterators
// created from the same Splitter are independent of each other.
type Tokens struct {
	splitter Splitter
	original string

	pos     int  // Byte offset where the next search starts.
	done    bool // The final token has been produced.
	emitted int  // Number of tokens produced so far.

	// The current token's byte range in original.
	from, to int
}

// Next advances the iterator to the next token and reports whether there is
// one. After Next returns false, the iterator stays exhausted until Reset is
// called.
func (t *Tokens) Next() bool {
	sp := &t.splitter
	for !t.done {
		start, end := t.pos, len(t.original)
		if sp.delim != nil {
			bstart, bend := sp.delim.next(t.original, t.pos)
			if bstart >= 0 {
				if bend <= bstart {
					panic("runesplit: zero-length delimiter match")
				}
				end = bstart
				t.pos = bend
			} else {
				t.done = true
			}
		} else {
			t.done = true
		}

		start, end = trimBounds(sp.trim, t.original, start, end)
		if sp.omitEmpty && start == end {
			continue
		}

		if sp.limit > 0 && t.emitted == sp.limit-1 && !t.done {
			// Out of budget: the rest of the input is the last token.
			_, end = trimBounds(sp.trim, t.original, start, len(t.original))
			t.done = true
		}
		t.emitted++
		t.from, t.to = start, end
		return true
	}
	t.from, t.to = 0, 0
	return false
}

// Str returns the current token. It is empty before the first call to Next
// and after the iterator is exhausted.
func (t *Tokens) Str() string {
	return t.original[t.from:t.to]
}

// Positions returns the byte offsets of the current token within the
// original string: Str() == original[from:to]. If trimming is enabled, the
// range excludes the trimmed runes.
func (t *Tokens) Positions() (from, to int) {
	return t.from, t.to
}

// Count returns the number of tokens produced so far.
func (t *Tokens) Count() int {
	return t.emitted
}

// Remain returns the part of the original string that has not been searched
// yet. It is empty once the final token has been produced.
func (t *Tokens) Remain() string {
	if t.done {
		return ""
	}
	return t.original[t.pos:]
}

// Reset puts the iterator back to the beginning of the original string.
func (t *Tokens) Reset() {
	*t = Tokens{splitter: t.splitter, original: t.original}
}

// trimBounds narrows str[start:end] by removing leading and trailing runes
// that match m. A nil m leaves the range unchanged.
func trimBounds(m Matcher, str string, start, end int) (int, int) {
	if m == nil {
		return start, end
	}
	for start < end {
		r, size := utf8.DecodeRuneInString(str[start:end])
		if !m.Matches(r) {
			break
		}
		start += size
	}
	for end > start {
		r, size := utf8.DecodeLastRuneInString(str[start:end])
		if !m.Matches(r) {
			break
		}
		end -= size
	}
	return start, end
}
