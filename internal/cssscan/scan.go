// Package cssscan implements byte scanner utilities: pure functions over
// byte ranges of a CSS source string. The scanning functions operate on
// (src, start, end int) triples rather than allocating substrings, so the
// rule parser can walk a multi-megabyte stylesheet without copying it;
// StripComments is the exception, returning a new string.
//
// Grounded on evanw-esbuild/internal/css_lexer.go's approach to comment
// and whitespace handling, adapted from a token-stream lexer to direct
// byte-offset scanning since the rule parser built on top works on
// ranges, not pre-tokenized input.
package cssscan

// IsWhitespace reports whether b is CSS whitespace: space, tab, CR, or LF.
func IsWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

// TrimLeading returns the smallest start' >= start such that src[start':end]
// has no leading ASCII whitespace.
func TrimLeading(src string, start, end int) int {
	for start < end && IsWhitespace(src[start]) {
		start++
	}
	return start
}

// TrimTrailing returns the largest end' <= end such that src[start:end']
// has no trailing ASCII whitespace.
func TrimTrailing(src string, start, end int) int {
	for end > start && IsWhitespace(src[end-1]) {
		end--
	}
	return end
}

// Trim strips leading and trailing ASCII whitespace from the range.
func Trim(src string, start, end int) (int, int) {
	start = TrimLeading(src, start, end)
	end = TrimTrailing(src, start, end)
	return start, end
}

// Slice safely extracts src[start:end], returning "" if the range is
// empty or inverted. Rule and declaration construction goes through this
// instead of raw slicing so a bookkeeping bug degrades to an empty string
// instead of a panic.
func Slice(src string, start, end int) string {
	if start < 0 || end > len(src) || start >= end {
		return ""
	}
	return src[start:end]
}

// SkipComment advances past a /* ... */ comment if pos is positioned at
// its opening "/*". It returns pos unchanged if there is no comment there,
// and end if the comment is unterminated.
func SkipComment(src string, pos, end int) int {
	if pos+1 >= end || src[pos] != '/' || src[pos+1] != '*' {
		return pos
	}
	i := pos + 2
	for i+1 < end {
		if src[i] == '*' && src[i+1] == '/' {
			return i + 2
		}
		i++
	}
	return end
}

// SkipWhitespaceAndComments advances pos past any run of whitespace and
// comments, in any interleaving (CSS allows comments anywhere whitespace
// is allowed).
func SkipWhitespaceAndComments(src string, pos, end int) int {
	for pos < end {
		if IsWhitespace(src[pos]) {
			pos++
			continue
		}
		next := SkipComment(src, pos, end)
		if next == pos {
			break
		}
		pos = next
	}
	return pos
}

// skipString advances past a quoted string starting at pos (which must
// point at a ' or " byte), honoring backslash escapes, and returns the
// position just past the closing quote (or end, if unterminated).
func skipString(src string, pos, end int) int {
	quote := src[pos]
	i := pos + 1
	for i < end {
		switch src[i] {
		case '\\':
			i += 2
			continue
		case quote:
			return i + 1
		}
		i++
	}
	return end
}

// FindMatchingBrace scans forward from start (which should point just
// past an opening "{") and returns the index of the matching "}",
// tracking nesting depth and skipping over quoted strings and comments so
// that braces inside `content: "{"` or `/* { */` don't confuse the count.
// If no match is found, it returns end.
func FindMatchingBrace(src string, start, end int) int {
	depth := 1
	i := start
	for i < end {
		switch src[i] {
		case '/':
			next := SkipComment(src, i, end)
			if next != i {
				i = next
				continue
			}
		case '\'', '"':
			i = skipString(src, i, end)
			continue
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
		i++
	}
	return end
}

// FindMatchingParen is FindMatchingBrace's analogue for "(" / ")", used to
// find the end of a url(...) token or a function call's argument list.
func FindMatchingParen(src string, start, end int) int {
	depth := 1
	i := start
	for i < end {
		switch src[i] {
		case '/':
			next := SkipComment(src, i, end)
			if next != i {
				i = next
				continue
			}
		case '\'', '"':
			i = skipString(src, i, end)
			continue
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
		i++
	}
	return end
}

// FindMatchingBraceStrict reports ok=false when no matching brace is
// found before end, for callers that want to fail with an
// unclosed-block error instead of silently truncating.
func FindMatchingBraceStrict(src string, start, end int) (pos int, ok bool) {
	pos = FindMatchingBrace(src, start, end)
	return pos, pos < end
}

// FindMatchingParenStrict is FindMatchingBraceStrict's analogue for parens.
func FindMatchingParenStrict(src string, start, end int) (pos int, ok bool) {
	pos = FindMatchingParen(src, start, end)
	return pos, pos < end
}
