package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/runesplit/internal/config"
)

// splitFlags are the splitter flags shared by the split and kv commands.
// They override the selected profile.
type splitFlags struct {
	profile    string
	on         string
	anyOf      string
	expr       string
	whitespace bool
	trim       bool
	trimAnyOf  string
	omitEmpty  bool
	limit      int
}

func (f *splitFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.profile, "profile", "p", "", "Named profile from the configuration file")
	flags.StringVar(&f.on, "on", "", `Literal delimiter; escapes such as "\t" are interpreted`)
	flags.StringVar(&f.anyOf, "any-of", "", "Split on runs of any of these characters")
	flags.StringVar(&f.expr, "expr", "", `Split on runs of characters matching an expression, e.g. 'isSpace(c) || char == ","'`)
	flags.BoolVarP(&f.whitespace, "whitespace", "w", false, "Split on runs of whitespace")
	flags.BoolVarP(&f.trim, "trim", "t", false, "Trim whitespace from tokens")
	flags.StringVar(&f.trimAnyOf, "trim-any-of", "", "Trim these characters from tokens")
	flags.BoolVarP(&f.omitEmpty, "omit-empty", "e", false, "Drop empty tokens")
	flags.IntVarP(&f.limit, "limit", "n", 0, "Produce at most this many tokens; the last one holds the rest")
}

// resolve merges the flags into the selected profile.
func (f *splitFlags) resolve(a *app) (config.Profile, error) {
	p, err := a.profile(f.profile)
	if err != nil {
		return p, err
	}
	if f.on != "" || f.anyOf != "" || f.expr != "" || f.whitespace {
		p.On, p.Matcher, p.AnyOf, p.Expr = unescape(f.on), "", unescape(f.anyOf), f.expr
		if f.whitespace {
			p.Matcher = "whitespace"
		}
	}
	p.Trim = p.Trim || f.trim
	if f.trimAnyOf != "" {
		p.TrimAnyOf = unescape(f.trimAnyOf)
	}
	p.OmitEmpty = p.OmitEmpty || f.omitEmpty
	if f.limit != 0 {
		p.Limit = f.limit
	}
	return p, nil
}

// unescape interprets Go escape sequences in s. Values that are not valid
// escaped strings are returned unchanged.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	u, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
	if err != nil {
		return s
	}
	return u
}

// trimNewline removes one trailing line ending, as left by echo and most
// editors.
func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

func newSplitCmd(a *app) *cobra.Command {
	var (
		flags   splitFlags
		render  bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "split [text...]",
		Short: "Split text and print the tokens",
		Long: `Split each argument, or all of standard input when no arguments are given,
and print one token per line. A single trailing newline of standard input is
ignored.`,
		Example: `  runesplit split --on , "a,b,,c"
  runesplit split --on , --omit-empty --render "a,b,,c"
  echo "a  b	c" | runesplit split -w
  runesplit split -p csv "x, y, z"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.resolve(a)
			if err != nil {
				return err
			}
			sp, err := p.Build()
			if err != nil {
				return err
			}
			a.log.Debugw("splitter configured", "splitter", sp.String())

			texts, err := inputs(cmd, args)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				texts[0] = trimNewline(texts[0])
			}

			out := newPrinter(cmd.OutOrStdout(), noColor)
			for _, text := range texts {
				tokens := sp.SplitToList(text)
				if render {
					out.render(tokens)
					continue
				}
				out.lines(tokens)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&render, "render", "r", false, `Print tokens as "[a, b, c]"`)
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	return cmd
}
