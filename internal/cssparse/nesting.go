package cssparse

import (
	"strings"

	"github.com/jamescook/cataract-sub000/internal/cssast"
	"github.com/jamescook/cataract-sub000/internal/cssdiag"
	"github.com/jamescook/cataract-sub000/internal/cssscan"
)

// parseRuleBody implements "fast path" and "nested path"
// as one unified statement scan: walk the body looking for the next
// top-level ";" (a declaration boundary) or "{" (a nested rule/at-rule
// boundary). A body with no "{" at all degenerates to exactly the fast
// path naturally, so there is no separate pre-scan for nested-selector
// lead characters.
func (p *parser) parseRuleBody(start, end int, ctx blockContext) ([]cssast.Declaration, error) {
	if ctx.depth > MaxParseDepth {
		return nil, p.errAt(cssdiag.DepthError, cssdiag.TagNone, start, "maximum nesting depth exceeded")
	}

	var decls []cssast.Declaration
	pos := start
	for {
		pos = cssscan.SkipWhitespaceAndComments(p.src, pos, end)
		for pos < end && p.src[pos] == ';' {
			pos++
			pos = cssscan.SkipWhitespaceAndComments(p.src, pos, end)
		}
		if pos >= end {
			return decls, nil
		}

		stop, ch := cssscan.ScanStatement(p.src, pos, end, ";{")
		switch ch {
		case ';', 0:
			stmtDecls, err := p.parseDeclarations(pos, stop)
			if err != nil {
				return nil, err
			}
			decls = append(decls, stmtDecls...)
			pos = stop
			if ch == ';' {
				pos++
			}

		case '{':
			segA, segB := cssscan.Trim(p.src, pos, stop)
			nestedText := cssscan.Slice(p.src, segA, segB)

			blockStart := stop + 1
			blockEnd, ok := cssscan.FindMatchingBraceStrict(p.src, blockStart, end)
			if !ok {
				if p.opts.Strict.UnclosedBlocks {
					return nil, p.errAt(cssdiag.ParseError, cssdiag.TagUnclosedBlock, stop, "unclosed nested block")
				}
				blockEnd = end
			}

			if strings.HasPrefix(nestedText, "@") {
				if err := p.parseNestedAtRule(nestedText, segA, blockStart, blockEnd, ctx); err != nil {
					return nil, err
				}
			} else {
				if err := p.emitRuleGroup(nestedText, segA, blockStart, blockEnd, ctx); err != nil {
					return nil, err
				}
			}

			pos = blockEnd
			if pos < end && p.src[pos] == '}' {
				pos++
			}
			// CSS nesting doesn't require a terminating ";" after a
			// nested block, but tolerate a stray one if present.
			skip := cssscan.SkipWhitespaceAndComments(p.src, pos, end)
			if skip < end && p.src[skip] == ';' {
				pos = skip + 1
			}
		}
	}
}

// parseNestedAtRule handles an at-rule found inside a rule body
// ("@media (...) { ... }" nested under a selector). Only @media combines
// meaningfully with an enclosing selector; other nested at-rules recurse
// with the same parent selector/media context.
func (p *parser) parseNestedAtRule(text string, textPos, blockStart, blockEnd int, ctx blockContext) error {
	switch {
	case strings.HasPrefix(strings.ToLower(text), "@media"):
		prelude := strings.TrimSpace(text[len("@media"):])
		mqListID, _, mqID, err := p.internMediaList(prelude, textPos, ctx.mediaQueryID)
		if err != nil {
			return err
		}
		return p.parseBlock(blockStart, blockEnd, blockContext{
			parentRuleID:   ctx.parentRuleID,
			parentSelector: ctx.parentSelector,
			mediaQueryID:   mqID,
			mediaListID:    mqListID,
			depth:          ctx.depth + 1,
			atDocRoot:      false,
		})
	default:
		return p.parseBlock(blockStart, blockEnd, blockContext{
			parentRuleID:   ctx.parentRuleID,
			parentSelector: ctx.parentSelector,
			mediaQueryID:   ctx.mediaQueryID,
			mediaListID:    ctx.mediaListID,
			depth:          ctx.depth + 1,
			atDocRoot:      false,
		})
	}
}

// splitSelectorSegments splits a selector string on top-level commas and
// trims each segment, "splitting the selector on
// top-level commas".
func splitSelectorSegments(selector string) []string {
	ranges := cssscan.SplitTopLevelCommas(selector, 0, len(selector))
	out := make([]string, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, selector[r[0]:r[1]])
	}
	return out
}

func isCombinatorByte(b byte) bool {
	return b == '+' || b == '>' || b == '~'
}

// resolveNestedSelector implements "Nested selector
// resolution": literal "&" substitution for explicit nesting, plain
// descendant-combinator concatenation for implicit nesting.
func resolveNestedSelector(parent, nested string) (string, cssast.NestingStyle) {
	nested = strings.TrimSpace(nested)
	if strings.Contains(nested, "&") {
		effectiveParent := parent
		if len(nested) > 0 && isCombinatorByte(nested[0]) {
			effectiveParent = parent + " "
		}
		return strings.ReplaceAll(nested, "&", effectiveParent), cssast.NestingExplicit
	}
	return parent + " " + nested, cssast.NestingImplicit
}
