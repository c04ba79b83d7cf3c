package runesplit_test

import (
	"fmt"
	"unicode"

	"github.com/scalecode-solutions/runesplit"
)

func ExampleOn() {
	fmt.Println(runesplit.On(',').Split(",a,,b,"))
	// Output: [, a, , b, ]
}

func ExampleOnString() {
	sp, err := runesplit.OnString(" -> ")
	if err != nil {
		panic(err)
	}
	for token := range sp.Split("parse -> check -> emit") {
		fmt.Printf("(%s)\n", token)
	}
	// Output: (parse)
	//(check)
	//(emit)
}

func ExampleOnString_empty() {
	_, err := runesplit.OnString("")
	fmt.Println(err)
	// Output: runesplit: invalid argument: empty delimiter
}

func ExampleOnMatcher() {
	words := runesplit.OnMatcher(runesplit.Whitespace)
	fmt.Println(words.Split("Testing\nrocks\tDebugging sucks"))
	// Output: [Testing, rocks, Debugging, sucks]
}

func ExampleSplitter_OmitEmptyStrings() {
	fmt.Println(runesplit.On('.').OmitEmptyStrings().Split("a..b.c"))
	fmt.Println(runesplit.On('.').OmitEmptyStrings().Split("...").Strings())
	// Output: [a, b, c]
	// []
}

func ExampleSplitter_TrimResults() {
	fmt.Printf("%q\n", runesplit.On('.').TrimResults().SplitToList("a. .c"))
	fmt.Printf("%q\n", runesplit.On('.').TrimResults().OmitEmptyStrings().SplitToList("a. .c"))
	// Output: ["a" "" "c"]
	// ["a" "c"]
}

func ExampleSplitter_TrimResultsWith() {
	sp := runesplit.On(',').TrimResultsWith(runesplit.Or(runesplit.AnyOf("afro"), runesplit.Whitespace))
	fmt.Println(sp.Split("arfo(Marlon)aorf, (Michael)orfa, afro(Jackie)orfa"))
	// Output: [(Marlon), (Michael), (Jackie)]
}

func ExampleSplitter_Limit() {
	fmt.Printf("%q\n", runesplit.On(',').Limit(2).SplitToList("a,b,c,d"))
	// Output: ["a" "b,c,d"]
}

func ExampleSplitter_Tokens() {
	str := "東京、大阪、京都"
	tokens := runesplit.On('、').Tokens(str)
	for tokens.Next() {
		from, to := tokens.Positions()
		fmt.Println(tokens.Str(), from, to)
	}
	// Output: 東京 0 6
	//大阪 9 15
	//京都 18 24
}

func ExampleSplitter_WithKeyValueSeparator() {
	ms, err := runesplit.On('&').WithKeyValueSeparator("=")
	if err != nil {
		panic(err)
	}
	entries, err := ms.Entries("lang=go&level=3&debug=")
	if err != nil {
		panic(err)
	}
	for _, e := range entries {
		fmt.Printf("%s=%q\n", e.Key, e.Value)
	}
	// Output: lang="go"
	//level="3"
	//debug=""
}

func ExampleAnd() {
	lettersOnly := runesplit.OnMatcher(runesplit.Not(runesplit.InTable(unicode.Letter)))
	fmt.Println(lettersOnly.OmitEmptyStrings().Split("Hello, wörld! 42 times"))

	asciiPunct := runesplit.And(runesplit.ASCII, runesplit.InTable(unicode.Punct))
	fmt.Println(runesplit.OnMatcher(asciiPunct).Split("a!b¡c"))
	// Output: [Hello, wörld, times]
	// [a, b¡c]
}

func ExampleRender() {
	fmt.Println(runesplit.Render(nil))
	fmt.Println(runesplit.Render([]string{"a", "b", "c"}))
	// Output: []
	// [a, b, c]
}
