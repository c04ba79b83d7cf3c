// Command runesplit splits text from arguments or standard input with a
// configurable splitter and prints the tokens.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
