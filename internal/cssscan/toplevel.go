package cssscan

import "strings"

// ScanStatement scans forward from start looking for the first byte in
// stopBytes that occurs at "top level": outside any quoted string or
// comment, and at zero paren nesting depth (so a `;` inside
// `url(data:...;base64,...)` or a `,` inside `rgb(0, 0, 0)` doesn't
// count). It returns the position of the match and the matched byte, or
// (end, 0) if no top-level match occurs before end.
//
// This is the shared primitive behind declaration-value scanning (stop at
// top-level ";"), rule-body statement scanning (stop at top-level ";" or
// "{"), and comma-separated list splitting (stop at top-level ",") --
// selector lists and media lists both need the same "don't split inside
// parens" rule.
func ScanStatement(src string, start, end int, stopBytes string) (pos int, ch byte) {
	depth := 0
	i := start
	for i < end {
		c := src[i]
		switch {
		case c == '/':
			if next := SkipComment(src, i, end); next != i {
				i = next
				continue
			}
		case c == '\'' || c == '"':
			i = skipString(src, i, end)
			continue
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0 && strings.IndexByte(stopBytes, c) >= 0:
			return i, c
		}
		i++
	}
	return end, 0
}

// SplitTopLevelCommas splits src[start:end] on top-level commas (outside
// parens/strings/comments), returning each segment's (start, end) byte
// range, trimmed of surrounding whitespace. Empty ranges are still
// returned (as start==end) so callers can detect an empty segment inside
// a comma-separated list for a strict-mode check.
func SplitTopLevelCommas(src string, start, end int) [][2]int {
	var segments [][2]int
	segStart := start
	for {
		stop, ch := ScanStatement(src, segStart, end, ",")
		a, b := Trim(src, segStart, stop)
		segments = append(segments, [2]int{a, b})
		if ch == 0 {
			break
		}
		segStart = stop + 1
	}
	return segments
}
