package main

import (
	"github.com/spf13/cobra"
)

func newKVCmd(a *app) *cobra.Command {
	var (
		flags     splitFlags
		separator string
		noColor   bool
	)

	cmd := &cobra.Command{
		Use:   "kv [text...]",
		Short: "Split key/value lists and print one entry per line",
		Long: `Split each argument, or standard input, into entries and each entry into a
key and a value. Entries are printed in input order as "key<TAB>value".
Every entry must contain the separator exactly once and keys must be unique.`,
		Example: `  runesplit kv --on '&' --separator = "a=1&b=2"
  runesplit kv --on , --trim "user = bob, id = 7"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.resolve(a)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("separator") || p.KeyValueSeparator == "" {
				p.KeyValueSeparator = unescape(separator)
			}
			ms, err := p.BuildMap()
			if err != nil {
				return err
			}

			texts, err := inputs(cmd, args)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				texts[0] = trimNewline(texts[0])
			}

			out := newPrinter(cmd.OutOrStdout(), noColor)
			for _, text := range texts {
				entries, err := ms.Entries(text)
				if err != nil {
					a.log.Debugw("key/value split failed", "error", err)
					return err
				}
				for _, e := range entries {
					out.entry(e.Key, e.Value)
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&separator, "separator", "s", "=", "Key/value separator")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	return cmd
}
