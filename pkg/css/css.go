// Package css is the public entry point for the stylesheet engine: a
// byte-offset parser, a cascade/flatten engine, a serializer and the
// shorthand/specificity helpers underneath them.
//
// Grounded on evanw-esbuild/pkg/api's thin-wrapper pattern: api.go there
// re-exports the internal bundler behind a small set of public functions
// and option structs so internal packages can change shape freely. This
// package does the same over internal/cssparse, internal/csscascade,
// internal/cssprinter, internal/cssshorthand and internal/cssselector.
package css

import (
	"fmt"

	"github.com/jamescook/cataract-sub000/internal/cssast"
	"github.com/jamescook/cataract-sub000/internal/csscascade"
	"github.com/jamescook/cataract-sub000/internal/cssdiag"
	"github.com/jamescook/cataract-sub000/internal/cssparse"
	"github.com/jamescook/cataract-sub000/internal/cssprinter"
	"github.com/jamescook/cataract-sub000/internal/cssselector"
	"github.com/jamescook/cataract-sub000/internal/cssshorthand"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Stylesheet is the parsed/flattened rule table a caller holds between
// pipeline stages. It re-exports cssast.Stylesheet directly: there is no
// public/internal shape divergence worth a wrapper for a pure data value.
type Stylesheet = cssast.Stylesheet

// StrictChecks re-exports cssparse.StrictChecks.
type StrictChecks = cssparse.StrictChecks

// StrictAll returns a StrictChecks with every check enabled.
func StrictAll() StrictChecks { return cssparse.StrictAll() }

// URIResolver resolves a relative URL found inside url(...) against base.
type URIResolver = cssparse.URIResolver

// Options configures Parse.
type Options struct {
	// SelectorLists tracks comma-separated selector lists under a shared
	// id. Defaults to true.
	SelectorLists bool

	// BaseURI, AbsolutePaths and URIResolver configure URL rewriting; URL
	// rewriting is active iff URIResolver is non-nil.
	BaseURI       string
	AbsolutePaths bool
	URIResolver   URIResolver

	Strict StrictChecks

	// Logger receives optional operational tracing. Nil disables it.
	Logger *zap.Logger
}

// DefaultOptions returns the permissive default: selector lists on, URL
// rewriting off, every strict check off.
func DefaultOptions() Options {
	return Options{SelectorLists: true}
}

func (o Options) toInternal() cssparse.Options {
	return cssparse.Options{
		SelectorLists: o.SelectorLists,
		BaseURI:       o.BaseURI,
		AbsolutePaths: o.AbsolutePaths,
		URIResolver:   o.URIResolver,
		Strict:        o.Strict,
		Logger:        o.Logger,
	}
}

// ParseError is returned by Parse when a strict check rejects the input.
// It carries a message, the source text, a byte position, and a type.
type ParseError struct {
	inner *cssparse.Error
}

func (e *ParseError) Error() string { return e.inner.Error() }

// Pos is the byte offset into the source where the error occurred.
func (e *ParseError) Pos() int32 { return e.inner.Pos() }

// Type is the symbolic error tag (e.g. "malformed_declaration").
func (e *ParseError) Type() string { return e.inner.Type() }

// Kind is the error's severity class ("parse error", "depth error" or
// "size error").
func (e *ParseError) Kind() string { return e.inner.Kind() }

// CSS is the original source text the error was found in.
func (e *ParseError) CSS() string { return e.inner.CSS() }

// Diagnostic is one non-fatal message recorded during a parse or flatten.
type Diagnostic struct {
	Text string
	Pos  int32
}

// Diagnostics is the list Parse returns alongside a stylesheet. A strict
// caller that still wants to know what a tolerant parse recovered from
// can fold the whole list into one error with Combined, rather than
// looping over it by hand.
type Diagnostics []Diagnostic

// Combined joins every diagnostic into one multierr-wrapped error (nil if
// there are none), so a caller can ignore it, log it whole, or split it
// back apart with multierr.Errors.
func (d Diagnostics) Combined() error {
	if len(d) == 0 {
		return nil
	}
	errs := make([]error, len(d))
	for i, diag := range d {
		errs[i] = fmt.Errorf("%s (pos %d)", diag.Text, diag.Pos)
	}
	return multierr.Combine(errs...)
}

// Parse turns CSS source into a Stylesheet, plus any diagnostics
// recovered from along the way.
func Parse(src string, opts Options) (*Stylesheet, Diagnostics, error) {
	sheet, msgs, err := cssparse.Parse(src, opts.toInternal())
	diags := toDiagnostics(msgs)
	if err != nil {
		if pe, ok := err.(*cssparse.Error); ok {
			return nil, diags, &ParseError{inner: pe}
		}
		return nil, diags, err
	}
	return sheet, diags, nil
}

func toDiagnostics(msgs []cssdiag.Msg) Diagnostics {
	if len(msgs) == 0 {
		return nil
	}
	diags := make(Diagnostics, len(msgs))
	for i, m := range msgs {
		diags[i] = Diagnostic{Text: m.Text, Pos: m.Loc.Start}
	}
	return diags
}

// Flatten runs the cascade/specificity resolution pass that collapses
// duplicate selectors and recreates shorthands.
func Flatten(sheet *Stylesheet) *Stylesheet {
	return csscascade.Flatten(sheet)
}

// FlattenTraced is Flatten with debug-level operational tracing (rule
// counts) sent to logger, so a caller running parse->flatten->serialize
// under one zap.Logger gets breadcrumbs from both ends of the pipeline.
// A nil logger behaves like Flatten.
func FlattenTraced(sheet *Stylesheet, logger *zap.Logger) *Stylesheet {
	return csscascade.FlattenTraced(sheet, cssdiag.NewTracer(logger))
}

// Merge implements the single-rule rollup pathway: every rule's
// declarations cascaded into one, emitted as a single rule.
func Merge(sheet *Stylesheet) *Stylesheet {
	return csscascade.Merge(sheet)
}

// MergeTraced is Merge with debug-level operational tracing, mirroring
// FlattenTraced.
func MergeTraced(sheet *Stylesheet, logger *zap.Logger) *Stylesheet {
	return csscascade.MergeTraced(sheet, cssdiag.NewTracer(logger))
}

// Mode selects compact or formatted serialization.
type Mode = cssprinter.Mode

const (
	Compact   = cssprinter.Compact
	Formatted = cssprinter.Formatted
)

// Serialize renders sheet back to CSS text in the given Mode.
func Serialize(sheet *Stylesheet, mode Mode) string {
	return cssprinter.Serialize(sheet, mode)
}

// ExpandShorthand expands a shorthand property's value into its
// longhand properties.
func ExpandShorthand(property, value string) (map[string]string, bool) {
	return cssshorthand.Expand(property, value)
}

// CreateShorthand assembles a shorthand value from its longhand
// properties.
func CreateShorthand(kind string, longhands map[string]string) (string, bool) {
	return cssshorthand.Create(kind, longhands)
}

// IsShorthandProperty reports whether property is a recognized shorthand.
func IsShorthandProperty(property string) bool {
	return cssshorthand.IsShorthand(property)
}

// Specificity computes a selector's specificity weight.
func Specificity(selector string) int {
	return cssselector.Compute(selector)
}
