package cssscan

import "strings"

// StripComments removes every /* ... */ comment from s, preserving
// comment-like text inside quoted strings (CSS string literals aren't
// comments even when they happen to contain "/*"). Used by the
// declaration parser to strip comments embedded inside a value, grounded
// in evanw-esbuild/internal/css_lexer, which strips comments as part of
// tokenization rather than leaving them in token text.
func StripComments(s string) string {
	if !strings.Contains(s, "/*") {
		return s
	}
	var b strings.Builder
	i := 0
	for i < len(s) {
		switch s[i] {
		case '\'', '"':
			j := skipString(s, i, len(s))
			b.WriteString(s[i:j])
			i = j
		case '/':
			next := SkipComment(s, i, len(s))
			if next != i {
				i = next
				continue
			}
			b.WriteByte(s[i])
			i++
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}
