package runesplit

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// roundTripInputs exercise delimiters at the edges, adjacent delimiters and
// multibyte text.
var roundTripInputs = []string{
	"",
	",",
	",,",
	"a",
	"a,b,c",
	",a,b,c,",
	"a,,b,,,c",
	"héllo, wörld,,🍺",
	"::a::::b::",
	"aaaa",
	"\xff,\xfe",
}

func TestRoundTrip(t *testing.T) {
	for _, sep := range []string{",", "::", "a", "🍺", ", "} {
		sp := MustOnString(sep)
		for _, input := range roundTripInputs {
			tokens := sp.SplitToList(input)
			if got := strings.Join(tokens, sep); got != input {
				t.Errorf("OnString(%q) round trip of %q: got %q (tokens %q)", sep, input, got, tokens)
			}
		}
	}
	for _, input := range roundTripInputs {
		tokens := On(',').SplitToList(input)
		if got := strings.Join(tokens, ","); got != input {
			t.Errorf("On(',') round trip of %q: got %q", input, got)
		}
	}
}

func TestRoundTripMatcherRuns(t *testing.T) {
	// For runs, joining with the runs that were actually matched restores the
	// input.
	input := "  a \t b\n\nc  "
	tokens := OnMatcher(Whitespace).Tokens(input)
	var b strings.Builder
	last := 0
	for tokens.Next() {
		from, to := tokens.Positions()
		b.WriteString(input[last:from])
		b.WriteString(tokens.Str())
		last = to
	}
	if b.String() != input {
		t.Errorf("got %q, want %q", b.String(), input)
	}
}

func TestSequenceRestartable(t *testing.T) {
	seq := On(',').Split("a,b,c")
	first := seq.Strings()
	second := seq.Strings()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second traversal differs (-first +second):\n%s", diff)
	}

	// Stopping early does not affect the next traversal.
	for token := range seq {
		if token != "a" {
			t.Fatalf("got %q, want a", token)
		}
		break
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, seq.Strings()); diff != "" {
		t.Errorf("traversal after early stop (-want +got):\n%s", diff)
	}
}

func TestSequencesIndependent(t *testing.T) {
	sp := On(',').OmitEmptyStrings()
	first := sp.Tokens("a,,b")
	second := sp.Tokens("x,y,z")

	var got []string
	for first.Next() {
		got = append(got, first.Str())
		if second.Next() {
			got = append(got, second.Str())
		}
	}
	for second.Next() {
		got = append(got, second.Str())
	}

	want := []string{"a", "x", "b", "y", "z"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("interleaved iteration (-want +got):\n%s", diff)
	}
}

func TestConcurrentSplits(t *testing.T) {
	sp := OnMatcher(AnyOf(",;")).TrimResults().OmitEmptyStrings()
	inputs := []string{"a, b; c", ";;x;;", " one ,two;three ", ""}
	want := make([][]string, len(inputs))
	for i, input := range inputs {
		want[i] = sp.SplitToList(input)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, input := range inputs {
				if diff := cmp.Diff(want[i], sp.Split(input).Strings()); diff != "" {
					t.Errorf("split of %q (-want +got):\n%s", input, diff)
				}
			}
		}()
	}
	wg.Wait()
}

func TestTokensIterator(t *testing.T) {
	input := " a , b ,"
	tokens := On(',').TrimResults().Tokens(input)

	if tokens.Str() != "" {
		t.Errorf("Str before Next: got %q", tokens.Str())
	}

	type step struct {
		token    string
		from, to int
		remain   string
	}
	want := []step{
		{"a", 1, 2, " b ,"},
		{"b", 5, 6, ""},
		{"", 8, 8, ""},
	}
	var got []step
	for tokens.Next() {
		from, to := tokens.Positions()
		got = append(got, step{tokens.Str(), from, to, tokens.Remain()})
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(step{})); diff != "" {
		t.Errorf("steps (-want +got):\n%s", diff)
	}
	if tokens.Count() != 3 {
		t.Errorf("Count: got %d, want 3", tokens.Count())
	}
	if tokens.Next() {
		t.Error("Next after exhaustion returned true")
	}
	if tokens.Str() != "" {
		t.Errorf("Str after exhaustion: got %q", tokens.Str())
	}

	tokens.Reset()
	if !tokens.Next() || tokens.Str() != "a" || tokens.Count() != 1 {
		t.Errorf("after Reset: got %q, count %d", tokens.Str(), tokens.Count())
	}
}

func TestInvalidUTF8(t *testing.T) {
	// Invalid bytes are U+FFFD to matchers and pass through unchanged.
	input := "a\xff b\xfe\xfd"
	got := OnMatcher(Whitespace).SplitToList(input)
	if diff := cmp.Diff([]string{"a\xff", "b\xfe\xfd"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	got = On('x').TrimResultsWith(Is('\uFFFD')).SplitToList("\xffax\xfe")
	if diff := cmp.Diff([]string{"a", ""}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

type zeroLengthDelimiter struct{}

func (zeroLengthDelimiter) next(str string, from int) (int, int) { return from, from }
func (zeroLengthDelimiter) String() string                         { return "zero" }

func TestZeroLengthBoundaryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	Splitter{delim: zeroLengthDelimiter{}}.SplitToList("abc")
}

func TestRunDelimiter(t *testing.T) {
	tests := []struct {
		input      string
		from       int
		start, end int
	}{
		{"a  b", 0, 1, 3},
		{"a  b", 3, -1, -1},
		{"  ", 0, 0, 2},
		{"ab  ", 1, 2, 4},
		{"", 0, -1, -1},
		{"a\u3000 b", 0, 1, 5},
	}
	d := runDelimiter{Whitespace}
	for _, tt := range tests {
		start, end := d.next(tt.input, tt.from)
		if start != tt.start || end != tt.end {
			t.Errorf("next(%q, %d) = %d, %d; want %d, %d", tt.input, tt.from, start, end, tt.start, tt.end)
		}
	}
}

func BenchmarkSplitRune(b *testing.B) {
	input := strings.Repeat("alpha,beta,,gamma,", 64)
	sp := On(',')
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		t := sp.Tokens(input)
		for t.Next() {
		}
	}
}

func BenchmarkSplitWhitespaceRuns(b *testing.B) {
	input := strings.Repeat("alpha  beta\t\tgamma \n", 64)
	sp := OnMatcher(Whitespace).TrimResults()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		t := sp.Tokens(input)
		for t.Next() {
		}
	}
}
