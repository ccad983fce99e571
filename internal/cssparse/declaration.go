package cssparse

import (
	"strings"

	"github.com/jamescook/cataract-sub000/internal/cssast"
	"github.com/jamescook/cataract-sub000/internal/cssdiag"
	"github.com/jamescook/cataract-sub000/internal/cssscan"
)

// parseDeclarations walks src[start:end], a byte range purporting to
// contain zero or more `prop: val [!important];`
// statements. It returns every Declaration successfully parsed; a
// malformed statement is either recovered from (skip to next top-level
// ";") or, in strict mode, aborts the whole parse with an *Error.
func (p *parser) parseDeclarations(start, end int) ([]cssast.Declaration, error) {
	var decls []cssast.Declaration
	pos := start
	for pos < end {
		// Step 1: skip whitespace, comments and stray semicolons.
		pos = cssscan.SkipWhitespaceAndComments(p.src, pos, end)
		for pos < end && p.src[pos] == ';' {
			pos++
			pos = cssscan.SkipWhitespaceAndComments(p.src, pos, end)
		}
		if pos >= end {
			break
		}

		stmtEnd, ch := cssscan.ScanStatement(p.src, pos, end, ";")

		colon, _ := cssscan.ScanStatement(p.src, pos, stmtEnd, ":")
		if colon >= stmtEnd {
			// Step 2: no top-level ":" -- malformed declaration.
			if p.opts.Strict.MalformedDeclarations {
				return nil, p.errAt(cssdiag.ParseError, cssdiag.TagMalformedDeclaration, pos, "declaration missing ':'")
			}
			p.tracer.Recovered(cssdiag.TagMalformedDeclaration, cssdiag.Loc{Start: int32(pos)})
			p.log.AddWarning(cssdiag.Loc{Start: int32(pos)}, "skipping malformed declaration")
			pos = stmtEnd
			if ch == ';' {
				pos++
			}
			continue
		}

		propStart, propEnd := cssscan.Trim(p.src, pos, colon)
		prop := cssscan.Slice(p.src, propStart, propEnd)
		// Step 3: enforce property-name length.
		if len(prop) > MaxPropertyNameLength {
			return nil, p.errAt(cssdiag.SizeError, cssdiag.TagNone, propStart, "property name exceeds maximum length")
		}
		if prop == "" {
			if p.opts.Strict.MalformedDeclarations {
				return nil, p.errAt(cssdiag.ParseError, cssdiag.TagMalformedDeclaration, pos, "empty property name")
			}
			p.log.AddWarning(cssdiag.Loc{Start: int32(pos)}, "skipping declaration with empty property name")
			pos = stmtEnd
			if ch == ';' {
				pos++
			}
			continue
		}

		// Step 4: value runs from just after ":" to the statement's
		// top-level ";" (paren depth already respected by ScanStatement).
		valStart, valEnd := cssscan.Trim(p.src, colon+1, stmtEnd)
		value := cssscan.Slice(p.src, valStart, valEnd)
		value = strings.TrimSpace(cssscan.StripComments(value))

		// Step 5: detect and strip a trailing "!important".
		value, important := splitImportantDecl(value)

		// Step 6: enforce value length.
		if len(value) > MaxPropertyValueLength {
			return nil, p.errAt(cssdiag.SizeError, cssdiag.TagNone, valStart, "declaration value exceeds maximum length")
		}

		// Step 7: empty value handling.
		if value == "" {
			if p.opts.Strict.EmptyValues {
				return nil, p.errAt(cssdiag.ParseError, cssdiag.TagEmptyValue, valStart, "empty declaration value")
			}
			p.tracer.Recovered(cssdiag.TagEmptyValue, cssdiag.Loc{Start: int32(valStart)})
			p.log.AddWarning(cssdiag.Loc{Start: int32(valStart)}, "skipping declaration with empty value")
			pos = stmtEnd
			if ch == ';' {
				pos++
			}
			continue
		}

		// Step 8: lowercase property unless a custom property.
		isCustom := len(prop) >= 2 && prop[0] == '-' && prop[1] == '-'
		if !isCustom {
			prop = strings.ToLower(prop)
		}

		// Step 9: rewrite urls if active.
		if p.opts.URIResolver != nil {
			value = rewriteURLs(value, p.opts.BaseURI, p.opts.AbsolutePaths, p.opts.URIResolver)
		}

		decls = append(decls, cssast.Declaration{Property: prop, Value: value, Important: important})

		pos = stmtEnd
		if ch == ';' {
			pos++
		}
	}
	return decls, nil
}

// splitImportantDecl detects a trailing "!important" (case-sensitive on
// the literal "important", free-form on surrounding whitespace).
func splitImportantDecl(value string) (string, bool) {
	trimmed := strings.TrimRight(value, " \t\r\n")
	if !strings.HasSuffix(trimmed, "important") {
		return value, false
	}
	before := trimmed[:len(trimmed)-len("important")]
	before = strings.TrimRight(before, " \t\r\n")
	if !strings.HasSuffix(before, "!") {
		return value, false
	}
	return strings.TrimRight(before[:len(before)-1], " \t\r\n"), true
}
