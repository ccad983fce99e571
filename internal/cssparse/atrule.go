package cssparse

import (
	"strings"

	"github.com/jamescook/cataract-sub000/internal/cssast"
	"github.com/jamescook/cataract-sub000/internal/cssdiag"
	"github.com/jamescook/cataract-sub000/internal/cssscan"
)

// parseImport implements @import handling: a URL (quoted
// string or url(...)), an optional comma-separated media list, grouped
// under one MediaQueryListID.
func (p *parser) parseImport(pos, end int) (int, error) {
	stmtEnd, ch := cssscan.ScanStatement(p.src, pos, end, ";")
	body := strings.TrimSpace(p.src[pos+len("@import") : stmtEnd])

	url, rest, ok := scanURLOrString(body)
	if !ok {
		if p.opts.Strict.MalformedAtRules {
			return 0, p.errAt(cssdiag.ParseError, cssdiag.TagMalformedAtRule, pos, "@import missing a url")
		}
		p.log.AddWarning(cssdiag.Loc{Start: int32(pos)}, "skipping malformed @import")
		return advancePastStatement(stmtEnd, ch), nil
	}

	mediaText := strings.TrimSpace(rest)
	listID, _, _, err := p.internMediaList(mediaText, pos, cssast.NoMediaQueryID)
	if err != nil {
		return 0, err
	}

	resolved := ""
	if p.opts.URIResolver != nil {
		resolved = rewriteOneURL(url, p.opts.BaseURI, p.opts.AbsolutePaths, p.opts.URIResolver)
	}

	p.sheet.Imports = append(p.sheet.Imports, cssast.ImportStatement{
		URL:              url,
		MediaText:        mediaText,
		MediaQueryListID: listID,
		Resolved:         resolved,
	})
	p.tracer.ParsedAtRule("@import")

	return advancePastStatement(stmtEnd, ch), nil
}

// parseCharset implements "@charset \"name\";".
func (p *parser) parseCharset(pos, end int) (int, error) {
	stmtEnd, ch := cssscan.ScanStatement(p.src, pos, end, ";")
	body := strings.TrimSpace(p.src[pos+len("@charset") : stmtEnd])
	if len(body) >= 2 && (body[0] == '"' || body[0] == '\'') && body[len(body)-1] == body[0] {
		p.sheet.Charset = body[1 : len(body)-1]
	} else if p.opts.Strict.MalformedAtRules {
		return 0, p.errAt(cssdiag.ParseError, cssdiag.TagMalformedAtRule, pos, "@charset missing a quoted name")
	}
	return advancePastStatement(stmtEnd, ch), nil
}

// parseMedia implements @media handling, including the
// "combine with the parent's conditions" rule for @media nested under an
// outer @media.
func (p *parser) parseMedia(pos, end int, ctx blockContext) (int, error) {
	braceStop, ch := cssscan.ScanStatement(p.src, pos, end, "{")
	if ch != '{' {
		if p.opts.Strict.MalformedAtRules {
			return 0, p.errAt(cssdiag.ParseError, cssdiag.TagMalformedAtRule, pos, "@media with no block")
		}
		return end, nil
	}
	prelude := strings.TrimSpace(p.src[pos+len("@media") : braceStop])

	listID, ids, primary, err := p.internMediaList(prelude, pos, ctx.mediaQueryID)
	if err != nil {
		return 0, err
	}
	_ = ids

	blockStart := braceStop + 1
	blockEnd, ok := cssscan.FindMatchingBraceStrict(p.src, blockStart, end)
	if !ok {
		if p.opts.Strict.UnclosedBlocks {
			return 0, p.errAt(cssdiag.ParseError, cssdiag.TagUnclosedBlock, braceStop, "unclosed @media block")
		}
		blockEnd = end
	}

	childCtx := blockContext{
		parentRuleID:   ctx.parentRuleID,
		parentSelector: ctx.parentSelector,
		mediaQueryID:   primary,
		mediaListID:    listID,
		depth:          ctx.depth + 1,
		atDocRoot:      false,
	}
	if err := p.parseBlock(blockStart, blockEnd, childCtx); err != nil {
		return 0, err
	}

	next := blockEnd
	if next < end && p.src[next] == '}' {
		next++
	}
	return next, nil
}

// internMediaList parses a comma-separated media prelude into one or
// more cssast.MediaQuery entries, grouping them under a fresh
// MediaQueryListID when there are 2+, combining with parentMediaQueryID's
// conditions (if set) under the nested-@media combination rule. It
// returns the list id (NoMediaQueryListID if fewer than 2 entries), every
// interned id, and the primary (first) id for single-reference fields.
func (p *parser) internMediaList(prelude string, pos int, parentMediaQueryID cssast.MediaQueryID) (cssast.MediaQueryListID, []cssast.MediaQueryID, cssast.MediaQueryID, error) {
	if prelude == "" {
		return cssast.NoMediaQueryListID, nil, cssast.NoMediaQueryID, nil
	}

	var parentText string
	if parentMediaQueryID != cssast.NoMediaQueryID {
		parentText = p.sheet.MediaQueries[parentMediaQueryID].Text()
	}

	segments := cssscan.SplitTopLevelCommas(prelude, 0, len(prelude))
	ids := make([]cssast.MediaQueryID, 0, len(segments))
	for _, seg := range segments {
		text := strings.TrimSpace(prelude[seg[0]:seg[1]])
		if text == "" {
			if p.opts.Strict.MalformedAtRules {
				return 0, nil, 0, p.errAt(cssdiag.ParseError, cssdiag.TagMalformedAtRule, pos, "empty media query in list")
			}
			continue
		}

		if len(p.sheet.MediaQueries) >= MaxMediaQueries {
			return 0, nil, 0, p.errAt(cssdiag.SizeError, cssdiag.TagNone, pos, "media query count exceeds maximum")
		}

		mtype, conditions := splitMediaTypeAndConditions(text)
		if parentText != "" {
			if conditions != "" {
				conditions = parentText + " and " + conditions
			} else if mtype != "" {
				conditions = parentText + " and " + mtype
				mtype = ""
			} else {
				conditions = parentText
			}
		}

		id := cssast.MediaQueryID(len(p.sheet.MediaQueries))
		p.sheet.MediaQueries = append(p.sheet.MediaQueries, cssast.MediaQuery{ID: id, Type: mtype, Conditions: conditions})
		ids = append(ids, id)
		p.mediaQueryCount++
	}

	if len(ids) == 0 {
		return cssast.NoMediaQueryListID, nil, cssast.NoMediaQueryID, nil
	}
	if len(ids) == 1 {
		return cssast.NoMediaQueryListID, ids, ids[0], nil
	}

	listID := cssast.MediaQueryListID(len(p.sheet.MediaQueryLists))
	p.sheet.MediaQueryLists[listID] = ids
	return listID, ids, ids[0], nil
}

// splitMediaTypeAndConditions splits "screen and (min-width: 500px)"
// into ("screen", "(min-width: 500px)"), or ("", "(min-width: 500px)")
// for a bare feature query, or ("screen", "") for a bare type.
func splitMediaTypeAndConditions(text string) (mtype, conditions string) {
	if strings.HasPrefix(text, "(") {
		return "", text
	}
	const and = " and "
	idx := indexCaseInsensitive(text, and)
	if idx < 0 {
		return text, ""
	}
	return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx+len(and):])
}

// parseConditionalGroup implements @supports/@layer/
// @container/@scope handling: recurse preserving the parent's media
// context and parent selector, after a strict-mode check that
// @supports/@container carry a condition.
func (p *parser) parseConditionalGroup(pos, end int, ctx blockContext) (int, error) {
	braceStop, ch := cssscan.ScanStatement(p.src, pos, end, "{")
	if ch != '{' {
		if p.opts.Strict.MalformedAtRules {
			return 0, p.errAt(cssdiag.ParseError, cssdiag.TagMalformedAtRule, pos, "at-rule with no block")
		}
		return end, nil
	}
	nameEnd := pos + 1
	for nameEnd < braceStop && isAtRuleNameByte(p.src[nameEnd]) {
		nameEnd++
	}
	name := strings.ToLower(p.src[pos:nameEnd])
	prelude := strings.TrimSpace(p.src[nameEnd:braceStop])

	if (name == "@supports" || name == "@container") && prelude == "" && p.opts.Strict.MalformedAtRules {
		return 0, p.errAt(cssdiag.ParseError, cssdiag.TagMalformedAtRule, pos, name+" requires a condition")
	}

	blockStart := braceStop + 1
	blockEnd, ok := cssscan.FindMatchingBraceStrict(p.src, blockStart, end)
	if !ok {
		if p.opts.Strict.UnclosedBlocks {
			return 0, p.errAt(cssdiag.ParseError, cssdiag.TagUnclosedBlock, braceStop, "unclosed block")
		}
		blockEnd = end
	}

	if err := p.parseBlock(blockStart, blockEnd, blockContext{
		parentRuleID:   ctx.parentRuleID,
		parentSelector: ctx.parentSelector,
		mediaQueryID:   ctx.mediaQueryID,
		mediaListID:    ctx.mediaListID,
		depth:          ctx.depth + 1,
		atDocRoot:      false,
	}); err != nil {
		return 0, err
	}

	next := blockEnd
	if next < end && p.src[next] == '}' {
		next++
	}
	return next, nil
}

// parseOpaqueAtRule implements @keyframes/@font-face/@page: capture the
// prelude as the AtRule's selector, then parse the body either as nested
// keyframe rules (@keyframes) or a flat declaration list (@font-face,
// @page, and other preserved-verbatim at-rules).
func (p *parser) parseOpaqueAtRule(pos, end int, ctx blockContext) (int, error) {
	braceStop, ch := cssscan.ScanStatement(p.src, pos, end, "{")
	if ch != '{' {
		if p.opts.Strict.MalformedAtRules {
			return 0, p.errAt(cssdiag.ParseError, cssdiag.TagMalformedAtRule, pos, "at-rule with no block")
		}
		return end, nil
	}
	a, b := cssscan.Trim(p.src, pos, braceStop)
	fullSelector := cssscan.Slice(p.src, a, b)
	isKeyframes := strings.HasPrefix(strings.ToLower(fullSelector), "@keyframes")

	blockStart := braceStop + 1
	blockEnd, ok := cssscan.FindMatchingBraceStrict(p.src, blockStart, end)
	if !ok {
		if p.opts.Strict.UnclosedBlocks {
			return 0, p.errAt(cssdiag.ParseError, cssdiag.TagUnclosedBlock, braceStop, "unclosed block")
		}
		blockEnd = end
	}

	id := p.reserveRule()
	at := cssast.AtRule{Selector: fullSelector, MediaQueryID: ctx.mediaQueryID}

	if isKeyframes {
		rules, err := p.parseKeyframeRules(blockStart, blockEnd)
		if err != nil {
			return 0, err
		}
		at.Rules = rules
	} else {
		decls, err := p.parseDeclarations(blockStart, blockEnd)
		if err != nil {
			return 0, err
		}
		at.Declarations = decls
	}
	p.fillAtRule(id, at)
	p.tracer.ParsedAtRule(fullSelector)

	next := blockEnd
	if next < end && p.src[next] == '}' {
		next++
	}
	return next, nil
}

// parseKeyframeRules parses a @keyframes body's "0%, 50% { ... }"
// entries into plain Rules (not reserved in the main Rules array --
// they live inside the AtRule itself, per cssast.AtRule.Rules).
func (p *parser) parseKeyframeRules(start, end int) ([]cssast.Rule, error) {
	var rules []cssast.Rule
	pos := start
	for {
		pos = cssscan.SkipWhitespaceAndComments(p.src, pos, end)
		if pos >= end {
			return rules, nil
		}
		stop, ch := cssscan.ScanStatement(p.src, pos, end, "{")
		if ch != '{' {
			return rules, nil
		}
		a, b := cssscan.Trim(p.src, pos, stop)
		selector := cssscan.Slice(p.src, a, b)

		bodyStart := stop + 1
		bodyEnd, ok := cssscan.FindMatchingBraceStrict(p.src, bodyStart, end)
		if !ok {
			bodyEnd = end
		}
		decls, err := p.parseDeclarations(bodyStart, bodyEnd)
		if err != nil {
			return nil, err
		}
		rules = append(rules, cssast.Rule{ID: cssast.NoRuleID, Selector: selector, Declarations: decls, ParentRuleID: cssast.NoRuleID, SelectorListID: cssast.NoSelectorListID, MediaQueryID: cssast.NoMediaQueryID})

		pos = bodyEnd
		if pos < end && p.src[pos] == '}' {
			pos++
		}
	}
}

// parseUnknownAtRule skips an at-rule this parser doesn't recognize:
// capture its prelude, skip past its block (or to the next top-level
// ";" if it has none), and warn.
func (p *parser) parseUnknownAtRule(pos, end int) (int, error) {
	stop, ch := cssscan.ScanStatement(p.src, pos, end, ";{")
	if ch == '{' {
		blockEnd, ok := cssscan.FindMatchingBraceStrict(p.src, stop+1, end)
		if !ok {
			if p.opts.Strict.UnclosedBlocks {
				return 0, p.errAt(cssdiag.ParseError, cssdiag.TagUnclosedBlock, stop, "unclosed block")
			}
			blockEnd = end
		}
		p.log.AddWarning(cssdiag.Loc{Start: int32(pos)}, "skipping unrecognized at-rule "+p.src[pos:stop])
		next := blockEnd
		if next < end && p.src[next] == '}' {
			next++
		}
		return next, nil
	}
	p.log.AddWarning(cssdiag.Loc{Start: int32(pos)}, "skipping unrecognized at-rule "+p.src[pos:stop])
	return advancePastStatement(stop, ch), nil
}

func advancePastStatement(stop int, ch byte) int {
	if ch == ';' {
		return stop + 1
	}
	return stop
}

func isAtRuleNameByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '-'
}

// scanURLOrString extracts a leading quoted string or url(...) token
// from s, returning the unquoted URL, the remaining text, and whether a
// URL was found.
func scanURLOrString(s string) (url, rest string, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", false
	}
	if s[0] == '"' || s[0] == '\'' {
		q := s[0]
		for i := 1; i < len(s); i++ {
			if s[i] == '\\' && i+1 < len(s) {
				i++
				continue
			}
			if s[i] == q {
				return s[1:i], s[i+1:], true
			}
		}
		return "", "", false
	}
	if len(s) >= 4 && strings.EqualFold(s[:4], "url(") {
		close := findCloseParen(s, 4)
		if close < 0 {
			return "", "", false
		}
		body, _ := unquoteURL(s[4:close])
		return body, s[close+1:], true
	}
	return "", "", false
}
