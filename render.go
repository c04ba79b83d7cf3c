package runesplit

import "strings"

// Render formats tokens for debugging as a bracketed, comma-separated list:
// "[a, b, c]". No tokens render as "[]". Tokens are not quoted, so an empty
// token shows as nothing between separators.
func Render(tokens []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, token := range tokens {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(token)
	}
	b.WriteByte(']')
	return b.String()
}
