// Package cssparse implements the declaration parser, the URL rewriter,
// and the rule parser core that drives both of them plus the shorthand
// engine to produce a cssast.Stylesheet.
//
// Grounded on evanw-esbuild/internal/css_parser's parser struct and
// Options/OptionsFromConfig pattern, adapted from esbuild's token-stream
// parser to a byte-offset recursive-descent scanner over cssscan, since
// the rule table needs stable integer ids rather than an AST node
// graph (see cssast's package doc).
package cssparse

import "go.uber.org/zap"

// Size and depth caps guarding against pathological or adversarial input.
const (
	MaxPropertyNameLength  = 256
	MaxPropertyValueLength = 32 * 1024
	MaxParseDepth          = 10
	MaxMediaQueries        = 1000
	MaxBlockSize           = 1 << 20 // 1 MiB, resource bound
)

// StrictChecks toggles each independently-switchable strict-mode check.
// When a field is false, the corresponding condition is tolerated: the
// parser recovers (skip-to-next-semicolon, skip-to-next-block, or silent
// warn) instead of failing.
type StrictChecks struct {
	EmptyValues           bool
	MalformedDeclarations bool
	InvalidSelectors      bool
	InvalidSelectorSyntax bool
	MalformedAtRules      bool
	UnclosedBlocks        bool
}

// StrictAll returns a StrictChecks with every check enabled, the
// equivalent of a single `raise_parse_errors: true` rather than toggling
// each check individually.
func StrictAll() StrictChecks {
	return StrictChecks{
		EmptyValues:           true,
		MalformedDeclarations: true,
		InvalidSelectors:      true,
		InvalidSelectorSyntax: true,
		MalformedAtRules:      true,
		UnclosedBlocks:        true,
	}
}

// URIResolver resolves a relative URL found inside url(...) against base.
// A non-nil error leaves the original URL text untouched: URL rewriting
// failures are suppressed rather than propagated as parse errors.
type URIResolver func(url, base string) (string, error)

// Options configures Parse, matching parser options table.
type Options struct {
	// SelectorLists tracks comma-separated selector lists under a shared
	// SelectorListID. Defaults to true.
	SelectorLists bool

	// BaseURI, AbsolutePaths and URIResolver configure URL rewriting; URL
	// rewriting is active iff URIResolver is non-nil.
	BaseURI       string
	AbsolutePaths bool
	URIResolver   URIResolver

	Strict StrictChecks

	// Logger receives debug-level operational tracing (parsed rules,
	// recovered errors, dropped imports). Nil disables tracing.
	Logger *zap.Logger
}

// DefaultOptions returns the permissive default: selector lists on, URL
// rewriting off, every strict check off (fully tolerant parsing).
func DefaultOptions() Options {
	return Options{SelectorLists: true}
}
