/*
Package runesplit implements configurable, Unicode-aware string splitting.

A [Splitter] is configured once and then applied to any number of strings.
Splitting is lazy: tokens are found one at a time as they are consumed, in a
single forward pass over the input.

# Overview

Using this package, you can:
  - Split on a single rune, on a literal string, or on runs of runes
    selected by a [Matcher]
  - Trim tokens with any matcher
  - Drop empty tokens
  - Cap the number of tokens, keeping the rest of the input unsplit
  - Split "key=value" lists into ordered entries or maps

# Getting Started

Construction:
  - [On] - Split on a single rune
  - [OnString] / [MustOnString] - Split on a literal string
  - [OnMatcher] - Split on runs of runes satisfying a matcher

Options (each returns a new Splitter, the receiver is never modified):
  - [Splitter.OmitEmptyStrings]
  - [Splitter.TrimResults] / [Splitter.TrimResultsWith]
  - [Splitter.Limit]

Consumption:
  - [Splitter.Split] - Lazy, restartable [Sequence]
  - [Splitter.Tokens] - Explicit iterator with positions
  - [Splitter.SplitToList] - All tokens as a slice
  - [Splitter.WithKeyValueSeparator] - Key/value splitting

# Boundaries

Tokens are the substrings between boundaries, and between a boundary and an
edge of the input. Therefore:

	On(',').Split(",a,b,")  // ["", "a", "b", ""]
	On(',').Split("a,,b")   // ["a", "", "b"]
	On(',').Split("")       // [""]
	On(',').Split("a")      // ["a"]

A matcher delimiter consumes the whole run of matching runes, so adjacent
matches never produce empty tokens between them:

	OnMatcher(Whitespace).Split("a \t\nb")  // ["a", "b"]

A literal or single-rune delimiter matches exactly once per boundary, so
joining the tokens with the delimiter reconstructs the input when no options
are set.

# Trimming and Omission

Trimming is applied to each token after its boundaries have been found. It
never changes where the next boundary is. Omission is decided after trimming:

	On('.').TrimResults().Split("a. .c")                    // ["a", "", "c"]
	On('.').OmitEmptyStrings().TrimResults().Split("a. .c") // ["a", "c"]

The order in which options are applied to the Splitter does not matter.

# Matchers

A [Matcher] is a pure predicate over runes. The package provides [Whitespace]
(the Unicode White_Space property), [AnyOf], [NoneOf], [Is], [InRange],
[InTable], and the combinators [Not], [Or], and [And]. Any function can be
used through [MatcherFunc].

Invalid UTF-8 in the input is decoded as U+FFFD, one byte at a time, when
matching and trimming. Tokens are always substrings of the input and keep
such bytes unchanged.
*/
package runesplit
