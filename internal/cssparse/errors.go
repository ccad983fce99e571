package cssparse

import (
	"github.com/jamescook/cataract-sub000/internal/cssdiag"
)

// Error is the fatal error type Parse returns, carrying a message, the
// source text, a byte position, and a kind. There are three error kinds:
// parse errors carry a symbolic tag; depth and size errors don't.
type Error struct {
	msg    cssdiag.Msg
	source string
}

func (e *Error) Error() string { return e.msg.String(e.source) }

// Pos is the byte offset the error occurred at.
func (e *Error) Pos() int32 { return e.msg.Loc.Start }

// Type is the symbolic tag ("malformed_declaration", "unclosed_block",
// ...), empty for depth/size errors which carry no tag.
func (e *Error) Type() string { return e.msg.Tag.String() }

// Kind distinguishes parse_error / depth_error / size_error.
func (e *Error) Kind() string { return e.msg.Kind.String() }

// CSS is the original source text the error was found in.
func (e *Error) CSS() string { return e.source }

func newError(source string, kind cssdiag.Kind, tag cssdiag.Tag, pos int32, text string) *Error {
	return &Error{
		msg:    cssdiag.Msg{Kind: kind, Tag: tag, Text: text, Loc: cssdiag.Loc{Start: pos}},
		source: source,
	}
}
