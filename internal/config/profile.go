package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/scalecode-solutions/runesplit"
	"github.com/scalecode-solutions/runesplit/exprmatch"
)

// Profile describes one splitter. Exactly one of On, Matcher, AnyOf and Expr
// selects the delimiter.
type Profile struct {
	On      string `yaml:"on"`      // literal delimiter; a single rune uses runesplit.On
	Matcher string `yaml:"matcher"` // named matcher, see NamedMatcher
	AnyOf   string `yaml:"any_of"`  // runs of any of these runes
	Expr    string `yaml:"expr"`    // runs of runes matching an expr-lang expression

	Trim      bool   `yaml:"trim"`        // trim whitespace
	TrimAnyOf string `yaml:"trim_any_of"` // trim these runes, in addition to whitespace if Trim is set
	OmitEmpty bool   `yaml:"omit_empty"`
	Limit     int    `yaml:"limit"`

	KeyValueSeparator string `yaml:"key_value_separator"`
}

// NamedMatcher returns the standard matcher with the given name: whitespace,
// ascii, digit, any or none.
func NamedMatcher(name string) (runesplit.Matcher, bool) {
	switch strings.ToLower(name) {
	case "whitespace", "space":
		return runesplit.Whitespace, true
	case "ascii":
		return runesplit.ASCII, true
	case "digit":
		return runesplit.Digit, true
	case "any":
		return runesplit.Any, true
	case "none":
		return runesplit.None, true
	}
	return nil, false
}

// Validate checks the profile without building it.
func (p Profile) Validate() error {
	_, err := p.Build()
	return err
}

// Build returns the splitter the profile describes.
func (p Profile) Build() (runesplit.Splitter, error) {
	var sp runesplit.Splitter

	set := 0
	for _, field := range []string{p.On, p.Matcher, p.AnyOf, p.Expr} {
		if field != "" {
			set++
		}
	}
	if set != 1 {
		return sp, newConfigError("on|matcher|any_of|expr", fmt.Sprintf("%d delimiters set", set))
	}

	switch {
	case p.On != "":
		if utf8.RuneCountInString(p.On) == 1 {
			r, _ := utf8.DecodeRuneInString(p.On)
			sp = runesplit.On(r)
			break
		}
		var err error
		if sp, err = runesplit.OnString(p.On); err != nil {
			return sp, err
		}
	case p.Matcher != "":
		m, ok := NamedMatcher(p.Matcher)
		if !ok {
			return sp, newConfigError("matcher", p.Matcher)
		}
		sp = runesplit.OnMatcher(m)
	case p.AnyOf != "":
		sp = runesplit.OnMatcher(runesplit.AnyOf(p.AnyOf))
	case p.Expr != "":
		m, err := exprmatch.Compile(p.Expr)
		if err != nil {
			return sp, fmt.Errorf("%w: field=expr: %v", ErrConfigInvalid, err)
		}
		sp = runesplit.OnMatcher(m)
	}

	switch {
	case p.Trim && p.TrimAnyOf != "":
		sp = sp.TrimResultsWith(runesplit.Or(runesplit.AnyOf(p.TrimAnyOf), runesplit.Whitespace))
	case p.Trim:
		sp = sp.TrimResults()
	case p.TrimAnyOf != "":
		sp = sp.TrimResultsWith(runesplit.AnyOf(p.TrimAnyOf))
	}
	if p.OmitEmpty {
		sp = sp.OmitEmptyStrings()
	}
	if p.Limit < 0 {
		return sp, newConfigError("limit", p.Limit)
	}
	if p.Limit > 0 {
		sp = sp.Limit(p.Limit)
	}
	return sp, nil
}

// BuildMap returns the key/value splitter the profile describes. The profile
// must set KeyValueSeparator.
func (p Profile) BuildMap() (runesplit.MapSplitter, error) {
	if p.KeyValueSeparator == "" {
		return runesplit.MapSplitter{}, newConfigError("key_value_separator", `""`)
	}
	sp, err := p.Build()
	if err != nil {
		return runesplit.MapSplitter{}, err
	}
	return sp.WithKeyValueSeparator(p.KeyValueSeparator)
}
