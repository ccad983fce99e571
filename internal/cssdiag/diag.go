// Package cssdiag implements the diagnostic-message framework used across
// the CSS engine: a position-tagged message type plus a deferred log that
// callers can either render to text or inspect programmatically.
//
// The shape is deliberately small compared to a multi-language compiler's
// diagnostics package: one file, one source, no line/column tracker beyond
// a byte-offset scan, no message suppression counters. A CSS engine that
// processes one stylesheet per call doesn't need any of that.
package cssdiag

import (
	"fmt"
	"strings"
)

// Loc is a byte offset into the source text. -1 means "no position".
type Loc struct {
	Start int32
}

// Range is a span of source text, starting at Loc and Len bytes long.
type Range struct {
	Loc Loc
	Len int32
}

func (r Range) End() int32 { return r.Loc.Start + r.Len }

// Kind distinguishes the three fatal error kinds from a Warning. A
// Warning never aborts the current parse/flatten; it only accompanies
// the recovered-from condition.
type Kind uint8

const (
	Warning Kind = iota
	ParseError
	DepthError
	SizeError
)

func (k Kind) String() string {
	switch k {
	case Warning:
		return "warning"
	case ParseError:
		return "parse error"
	case DepthError:
		return "depth error"
	case SizeError:
		return "size error"
	default:
		return "error"
	}
}

// Tag is the symbolic error type carried on a ParseError, matching the
// `type` field of ParseError payload.
type Tag uint8

const (
	TagNone Tag = iota
	TagMalformedDeclaration
	TagEmptyValue
	TagInvalidSelector
	TagInvalidSelectorSyntax
	TagMalformedAtRule
	TagUnclosedBlock
)

func (t Tag) String() string {
	switch t {
	case TagMalformedDeclaration:
		return "malformed_declaration"
	case TagEmptyValue:
		return "empty_value"
	case TagInvalidSelector:
		return "invalid_selector"
	case TagInvalidSelectorSyntax:
		return "invalid_selector_syntax"
	case TagMalformedAtRule:
		return "malformed_at_rule"
	case TagUnclosedBlock:
		return "unclosed_block"
	default:
		return ""
	}
}

// Msg is one diagnostic: a human-readable message tied to a byte position
// and, for fatal kinds, a symbolic tag a caller can branch on.
type Msg struct {
	Kind Kind
	Tag  Tag
	Text string
	Loc  Loc
}

// LineCol turns a byte offset into a 1-based line/column pair by scanning
// source. This is the only position-tracking esbuild's LineColumnTracker
// does that this engine still needs; the rest (UTF-16 column clamping for
// editor protocols) belongs to a bundler, not a stylesheet flattener.
func LineCol(source string, offset int32) (line, col int) {
	line = 1
	col = 1
	n := int(offset)
	if n > len(source) {
		n = len(source)
	}
	for i := 0; i < n; i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return
}

// String renders a message the way esbuild's Msg.String does for its
// terminal-free test mode: "<kind>: <text> (line <l>:<c>)", with the tag
// in brackets after the kind when one is set.
func (m Msg) String(source string) string {
	line, col := LineCol(source, m.Loc.Start)
	if m.Tag != TagNone {
		return fmt.Sprintf("%s [%s]: %s (line %d:%d)", m.Kind, m.Tag, m.Text, line, col)
	}
	return fmt.Sprintf("%s: %s (line %d:%d)", m.Kind, m.Text, line, col)
}

// Log collects messages produced while parsing or flattening a single
// stylesheet. It is not safe for concurrent use by multiple goroutines;
// each pipeline run owns its own Log.
type Log struct {
	msgs      []Msg
	hasErrors bool
}

// NewLog returns an empty Log.
func NewLog() *Log {
	return &Log{}
}

// AddWarning appends a non-fatal message.
func (l *Log) AddWarning(loc Loc, text string) {
	l.msgs = append(l.msgs, Msg{Kind: Warning, Text: text, Loc: loc})
}

// AddError appends a fatal message tagged with the symbolic error type a
// strict-mode caller can match on.
func (l *Log) AddError(kind Kind, tag Tag, loc Loc, text string) {
	l.msgs = append(l.msgs, Msg{Kind: kind, Tag: tag, Text: text, Loc: loc})
	l.hasErrors = true
}

// HasErrors reports whether any fatal message was recorded.
func (l *Log) HasErrors() bool { return l.hasErrors }

// Msgs returns every message recorded so far, in the order recorded.
func (l *Log) Msgs() []Msg { return l.msgs }

// String renders every recorded message against source, one per line,
// matching esbuild's DeferLog test convention of diffing the whole
// rendered log against an expected string.
func (l *Log) String(source string) string {
	var b strings.Builder
	for _, m := range l.msgs {
		b.WriteString(m.String(source))
		b.WriteByte('\n')
	}
	return b.String()
}
