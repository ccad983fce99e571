package cssparse

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jamescook/cataract-sub000/internal/cssast"
	"github.com/jamescook/cataract-sub000/internal/cssdiag"
	"github.com/jamescook/cataract-sub000/internal/cssscan"
)

// parser holds the mutable state threaded through one Parse call, styled
// after evanw-esbuild/internal/css_parser's parser struct: a shared
// receiver carrying source, options, and a log, with the actual scanning
// done by methods on it rather than free functions passed state.
type parser struct {
	src  string
	opts Options
	log  *cssdiag.Log

	sheet *cssast.Stylesheet

	mediaQueryCount int
	sawAnyRule      bool

	tracer cssdiag.Tracer
}

// Parse implements `parse(css, options) -> stylesheet`
// operation.
func Parse(src string, opts Options) (*cssast.Stylesheet, []cssdiag.Msg, error) {
	p := &parser{
		src:    src,
		opts:   opts,
		log:    cssdiag.NewLog(),
		sheet:  cssast.NewStylesheet(),
		tracer: cssdiag.NewTracer(opts.Logger),
	}
	p.sheet.ParseID = uuid.NewString()

	ctx := blockContext{
		parentRuleID: cssast.NoRuleID,
		mediaQueryID: cssast.NoMediaQueryID,
		depth:        0,
		atDocRoot:    true,
	}
	if err := p.parseBlock(0, len(src), ctx); err != nil {
		return nil, p.log.Msgs(), err
	}
	return p.sheet, p.log.Msgs(), nil
}

// blockContext carries the recursion state scan loop
// needs at every nesting level: which rule (if any) nested selectors
// resolve "&" against, which MediaQuery scope declarations fall under,
// how deep we are, and whether @import/@charset are still legal here.
type blockContext struct {
	parentRuleID   cssast.RuleID
	parentSelector string
	mediaQueryID   cssast.MediaQueryID
	mediaListID    cssast.MediaQueryListID // set when mediaQueryID came from a comma list, for multi-symbol MediaIndex entries
	depth          int
	atDocRoot      bool // true only for the top-level document scan
}

func (p *parser) errAt(kind cssdiag.Kind, tag cssdiag.Tag, pos int, text string) error {
	return newError(p.src, kind, tag, int32(pos), text)
}

// reserveRule appends a placeholder RuleNode and returns its id. The
// selector's position is known before its declarations are, so the slot
// is reserved up front and filled in once the block closes.
func (p *parser) reserveRule() cssast.RuleID {
	id := cssast.RuleID(len(p.sheet.Rules))
	p.sheet.Rules = append(p.sheet.Rules, cssast.RuleNode{})
	p.sheet.LastRuleID = id
	return id
}

func (p *parser) fillRule(id cssast.RuleID, r cssast.Rule) {
	r.ID = id
	p.sheet.Rules[id] = cssast.RuleNode{Style: &r}
	if r.HasParent() {
		p.sheet.HasNesting = true
	}
}

func (p *parser) fillAtRule(id cssast.RuleID, a cssast.AtRule) {
	a.ID = id
	p.sheet.Rules[id] = cssast.RuleNode{At: &a}
}

// parseBlock implements top-level scan loop. It is also
// the recursion target for @media/@supports/@layer/@container/@scope
// bodies, which re-enter the same loop with an adjusted blockContext;
// this keeps the "nested @media inside a rule body" and "plain top-level
// @media" cases sharing one implementation instead of two.
func (p *parser) parseBlock(start, end int, ctx blockContext) error {
	if ctx.depth > MaxParseDepth {
		return p.errAt(cssdiag.DepthError, cssdiag.TagNone, start, "maximum nesting depth exceeded")
	}
	if end-start > MaxBlockSize {
		return p.errAt(cssdiag.SizeError, cssdiag.TagNone, start, "block exceeds maximum size")
	}

	pos := start
	for {
		pos = cssscan.SkipWhitespaceAndComments(p.src, pos, end)
		for pos < end && p.src[pos] == ';' {
			pos++
			pos = cssscan.SkipWhitespaceAndComments(p.src, pos, end)
		}
		if pos >= end {
			return nil
		}

		switch {
		case ctx.atDocRoot && !p.sawAnyRule && matchKeywordFold(p.src, pos, "@import"):
			next, err := p.parseImport(pos, end)
			if err != nil {
				return err
			}
			pos = next

		case ctx.atDocRoot && matchKeywordFold(p.src, pos, "@charset"):
			next, err := p.parseCharset(pos, end)
			if err != nil {
				return err
			}
			pos = next

		case matchKeywordFold(p.src, pos, "@import"):
			// @import after rules have started is invalid CSS: warn and
			// drop it rather than reordering the stylesheet.
			stop, ch := cssscan.ScanStatement(p.src, pos, end, ";")
			p.log.AddWarning(cssdiag.Loc{Start: int32(pos)}, "ignoring @import after rules have been emitted")
			p.tracer.DroppedImport(p.src[pos:stop], "import appeared after rules")
			pos = stop
			if ch == ';' {
				pos++
			}

		case matchKeywordFold(p.src, pos, "@media"):
			next, err := p.parseMedia(pos, end, ctx)
			if err != nil {
				return err
			}
			pos = next

		case matchAnyKeywordFold(p.src, pos, "@supports", "@layer", "@container", "@scope"):
			next, err := p.parseConditionalGroup(pos, end, ctx)
			if err != nil {
				return err
			}
			pos = next

		case matchAnyKeywordFold(p.src, pos, "@keyframes", "@font-face", "@page"):
			next, err := p.parseOpaqueAtRule(pos, end, ctx)
			if err != nil {
				return err
			}
			pos = next

		case p.src[pos] == '@':
			next, err := p.parseUnknownAtRule(pos, end)
			if err != nil {
				return err
			}
			pos = next

		default:
			next, err := p.parseRuleset(pos, end, ctx)
			if err != nil {
				return err
			}
			pos = next
		}
	}
}

func matchKeywordFold(src string, pos int, kw string) bool {
	if pos+len(kw) > len(src) {
		return false
	}
	return strings.EqualFold(src[pos:pos+len(kw)], kw)
}

func matchAnyKeywordFold(src string, pos int, kws ...string) bool {
	for _, kw := range kws {
		if matchKeywordFold(src, pos, kw) {
			return true
		}
	}
	return false
}

// parseRuleset handles the default case: scan forward to the selector's
// opening "{", find its matching "}", then dispatch declaration parsing
// per segment.
func (p *parser) parseRuleset(pos, end int, ctx blockContext) (int, error) {
	selStart := pos
	stop, ch := cssscan.ScanStatement(p.src, pos, end, "{")
	if ch != '{' {
		// No block found before the enclosing range ends: garbage at
		// this scope. Recover by skipping it.
		if p.opts.Strict.InvalidSelectorSyntax {
			return 0, p.errAt(cssdiag.ParseError, cssdiag.TagInvalidSelectorSyntax, selStart, "selector with no block")
		}
		p.log.AddWarning(cssdiag.Loc{Start: int32(selStart)}, "skipping trailing content with no block")
		return end, nil
	}

	selA, selB := cssscan.Trim(p.src, selStart, stop)
	selectorText := cssscan.Slice(p.src, selA, selB)

	bodyStart := stop + 1
	bodyEnd, ok := cssscan.FindMatchingBraceStrict(p.src, bodyStart, end)
	if !ok {
		if p.opts.Strict.UnclosedBlocks {
			return 0, p.errAt(cssdiag.ParseError, cssdiag.TagUnclosedBlock, stop, "unclosed block")
		}
		bodyEnd = end
	}

	if err := p.emitRuleGroup(selectorText, selA, bodyStart, bodyEnd, ctx); err != nil {
		return 0, err
	}

	next := bodyEnd
	if next < end && p.src[next] == '}' {
		next++
	}
	return next, nil
}

// emitRuleGroup handles the matched block: split the selector on
// top-level commas, resolve each segment against ctx.parentSelector
// (implicit/explicit nesting resolution, see nesting.go), reserve a slot
// per segment, and parse the shared body once per segment (always via
// the reserve-then-fill pattern, so a body with no nested selectors --
// the "fast path" -- and one with nested selectors -- the "mixed" path
// -- are one code path; see nesting.go).
func (p *parser) emitRuleGroup(selectorText string, selectorPos, bodyStart, bodyEnd int, ctx blockContext) error {
	ranges := splitSelectorSegments(selectorText)
	if len(ranges) == 0 {
		if p.opts.Strict.InvalidSelectors {
			return p.errAt(cssdiag.ParseError, cssdiag.TagInvalidSelector, selectorPos, "empty selector")
		}
		return nil
	}

	var listID cssast.SelectorListID = cssast.NoSelectorListID
	if p.opts.SelectorLists && len(ranges) >= 2 {
		listID = cssast.SelectorListID(len(p.sheet.SelectorLists))
	}

	for _, seg := range ranges {
		if seg == "" {
			if p.opts.Strict.InvalidSelectorSyntax {
				return p.errAt(cssdiag.ParseError, cssdiag.TagInvalidSelectorSyntax, selectorPos, "empty segment in selector list")
			}
			continue
		}
		if err := p.checkSelectorSyntax(seg, selectorPos); err != nil {
			return err
		}

		resolved, style := seg, cssast.NestingNone
		if ctx.parentSelector != "" {
			resolved, style = resolveNestedSelector(ctx.parentSelector, seg)
		}

		id := p.reserveRule()
		if listID != cssast.NoSelectorListID {
			p.sheet.SelectorLists[listID] = append(p.sheet.SelectorLists[listID], id)
		}

		childCtx := blockContext{
			parentRuleID:   id,
			parentSelector: resolved,
			mediaQueryID:   ctx.mediaQueryID,
			mediaListID:    ctx.mediaListID,
			depth:          ctx.depth + 1,
			atDocRoot:      false,
		}
		decls, err := p.parseRuleBody(bodyStart, bodyEnd, childCtx)
		if err != nil {
			return err
		}

		p.fillRule(id, cssast.Rule{
			Selector:       resolved,
			Declarations:   decls,
			ParentRuleID:   ctx.parentRuleID,
			NestingStyle:   style,
			SelectorListID: listID,
			MediaQueryID:   ctx.mediaQueryID,
		})
		p.sawAnyRule = true
		p.tracer.ParsedRule(resolved, len(decls))

		p.indexByMedia(ctx, id)
	}
	return nil
}

// indexByMedia implements "a comma-separated @media screen,
// print indexes each rule under both screen and print": when ctx carries
// a MediaQueryListID, index under every member's type symbol; otherwise
// just the single MediaQuery's type.
func (p *parser) indexByMedia(ctx blockContext, id cssast.RuleID) {
	if ctx.mediaQueryID == cssast.NoMediaQueryID {
		return
	}
	if ctx.mediaListID != cssast.NoMediaQueryListID {
		for _, mqID := range p.sheet.MediaQueryLists[ctx.mediaListID] {
			mq := p.sheet.MediaQueries[mqID]
			p.sheet.MediaIndex[mq.Type] = append(p.sheet.MediaIndex[mq.Type], id)
		}
		return
	}
	mq := p.sheet.MediaQueries[ctx.mediaQueryID]
	p.sheet.MediaIndex[mq.Type] = append(p.sheet.MediaIndex[mq.Type], id)
}

// checkSelectorSyntax applies strict-mode selector checks:
// empty, leading combinator, disallowed characters, ".." / "##" runs.
func (p *parser) checkSelectorSyntax(sel string, pos int) error {
	if !p.opts.Strict.InvalidSelectors && !p.opts.Strict.InvalidSelectorSyntax {
		return nil
	}
	if p.opts.Strict.InvalidSelectors && sel == "" {
		return p.errAt(cssdiag.ParseError, cssdiag.TagInvalidSelector, pos, "empty selector")
	}
	if !p.opts.Strict.InvalidSelectorSyntax {
		return nil
	}
	if len(sel) > 0 && isCombinatorByte(sel[0]) {
		return p.errAt(cssdiag.ParseError, cssdiag.TagInvalidSelectorSyntax, pos, "selector starts with a combinator")
	}
	if strings.Contains(sel, "..") || strings.Contains(sel, "##") {
		return p.errAt(cssdiag.ParseError, cssdiag.TagInvalidSelectorSyntax, pos, "disallowed repeated selector character")
	}
	for i := 0; i < len(sel); i++ {
		if !isAllowedSelectorByte(sel[i]) {
			return p.errAt(cssdiag.ParseError, cssdiag.TagInvalidSelectorSyntax, pos, "selector contains a disallowed character")
		}
	}
	return nil
}

// isAllowedSelectorByte matches whitelist: letters,
// digits, and `-_.#[]:*>+~()='"^$|\&%/!,` plus whitespace.
func isAllowedSelectorByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '-', '_', '.', '#', '[', ']', ':', '*', '>', '+', '~', '(', ')',
		'=', '\'', '"', '^', '$', '|', '\\', '&', '%', '/', '!', ',',
		' ', '\t', '\r', '\n':
		return true
	}
	return false
}
