package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// printer writes tokens, coloring them when the output is a terminal.
type printer struct {
	w     io.Writer
	token *color.Color
	punct *color.Color
}

func newPrinter(w io.Writer, noColor bool) *printer {
	p := &printer{
		w:     w,
		token: color.New(color.FgCyan),
		punct: color.New(color.Faint),
	}
	enabled := !noColor && isTerminal(w)
	for _, c := range []*color.Color{p.token, p.punct} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// lines prints one token per line.
func (p *printer) lines(tokens []string) {
	for _, token := range tokens {
		fmt.Fprintln(p.w, p.token.Sprint(token))
	}
}

// render prints the tokens in the bracketed form of runesplit.Render.
func (p *printer) render(tokens []string) {
	fmt.Fprint(p.w, p.punct.Sprint("["))
	for i, token := range tokens {
		if i > 0 {
			fmt.Fprint(p.w, p.punct.Sprint(", "))
		}
		fmt.Fprint(p.w, p.token.Sprint(token))
	}
	fmt.Fprintln(p.w, p.punct.Sprint("]"))
}

// entry prints a key/value pair separated by a tab.
func (p *printer) entry(key, value string) {
	fmt.Fprintf(p.w, "%s\t%s\n", p.token.Sprint(key), value)
}
