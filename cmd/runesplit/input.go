package main

import (
	"io"

	"github.com/spf13/cobra"
)

// inputs returns the texts to split: each argument on its own, or all of
// standard input when there are no arguments.
func inputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	return []string{string(data)}, nil
}
