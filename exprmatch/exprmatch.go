// Package exprmatch builds runesplit matchers from boolean expressions.
//
// Expressions use the expr language (https://expr-lang.org) and are evaluated
// once per rune with these variables and functions:
//
//	c         the code point as an integer
//	char      the rune as a one-character string
//	isSpace   isDigit   isLetter   isUpper   isLower   isPunct
//
// For example:
//
//	char in [",", ";"] || isSpace(c)
//	c >= 0x4e00 && c <= 0x9fff
package exprmatch

import (
	"fmt"
	"unicode"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/scalecode-solutions/runesplit"
)

// Env is the environment an expression is evaluated in.
type Env struct {
	C    int    `expr:"c"`
	Char string `expr:"char"`

	IsSpace  func(int) bool `expr:"isSpace"`
	IsDigit  func(int) bool `expr:"isDigit"`
	IsLetter func(int) bool `expr:"isLetter"`
	IsUpper  func(int) bool `expr:"isUpper"`
	IsLower  func(int) bool `expr:"isLower"`
	IsPunct  func(int) bool `expr:"isPunct"`
}

func newEnv(r rune) Env {
	return Env{
		C:    int(r),
		Char: string(r),

		IsSpace:  func(c int) bool { return runesplit.Whitespace.Matches(rune(c)) },
		IsDigit:  func(c int) bool { return unicode.IsDigit(rune(c)) },
		IsLetter: func(c int) bool { return unicode.IsLetter(rune(c)) },
		IsUpper:  func(c int) bool { return unicode.IsUpper(rune(c)) },
		IsLower:  func(c int) bool { return unicode.IsLower(rune(c)) },
		IsPunct:  func(c int) bool { return unicode.IsPunct(rune(c)) },
	}
}

// Matcher is a compiled expression. It implements runesplit.Matcher and is
// safe for concurrent use.
type Matcher struct {
	source  string
	program *vm.Program
}

// Compile parses and type-checks expression. The expression must evaluate to
// a boolean.
func Compile(expression string) (*Matcher, error) {
	program, err := expr.Compile(expression, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: expression %q: %v", runesplit.ErrInvalidArgument, expression, err)
	}
	return &Matcher{source: expression, program: program}, nil
}

// MustCompile is like Compile but panics if the expression cannot be
// compiled.
func MustCompile(expression string) *Matcher {
	m, err := Compile(expression)
	if err != nil {
		panic(err)
	}
	return m
}

// Matches evaluates the expression for r. An expression that fails at run
// time, for example by indexing out of range, does not match.
func (m *Matcher) Matches(r rune) bool {
	output, err := expr.Run(m.program, newEnv(r))
	if err != nil {
		return false
	}
	matched, _ := output.(bool)
	return matched
}

// String returns the source expression.
func (m *Matcher) String() string {
	return m.source
}
