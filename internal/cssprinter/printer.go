// Package cssprinter serializes a cssast.Stylesheet back to CSS text, in
// compact or formatted mode, reconstructing nested `&` selectors and
// coalescing selector lists and media-query runs.
//
// Grounded on evanw-esbuild/internal/css_printer's Options{MinifyWhitespace}
// single-printer-two-modes shape, adapted to operate over the flat rule
// table instead of walking a css_ast.Rule tree.
package cssprinter

import (
	"strings"

	"github.com/jamescook/cataract-sub000/internal/cssast"
)

// Mode selects compact or formatted output.
type Mode int

const (
	Compact Mode = iota
	Formatted
)

type printer struct {
	sheet      *cssast.Stylesheet
	mode       Mode
	childrenOf map[cssast.RuleID][]*cssast.Rule
	b          strings.Builder
}

// Serialize renders sheet to CSS text in the given mode.
func Serialize(sheet *cssast.Stylesheet, mode Mode) string {
	p := &printer{sheet: sheet, mode: mode, childrenOf: map[cssast.RuleID][]*cssast.Rule{}}

	isChild := map[cssast.RuleID]bool{}
	if sheet.HasNesting {
		for _, node := range sheet.Rules {
			if node.Style != nil && node.Style.HasParent() {
				p.childrenOf[node.Style.ParentRuleID] = append(p.childrenOf[node.Style.ParentRuleID], node.Style)
				isChild[node.Style.ID] = true
			}
		}
	}

	if sheet.Charset != "" {
		p.b.WriteString(`@charset "`)
		p.b.WriteString(sheet.Charset)
		p.b.WriteString("\";\n")
	}

	currentMedia := cssast.NoMediaQueryID
	mediaOpen := false

	i := 0
	for i < len(sheet.Rules) {
		node := sheet.Rules[i]
		if node.Style != nil && isChild[node.Style.ID] {
			i++
			continue
		}

		mqID := cssast.NoMediaQueryID
		switch {
		case node.Style != nil:
			mqID = node.Style.MediaQueryID
		case node.At != nil:
			mqID = node.At.MediaQueryID
		}

		if mqID != currentMedia {
			if mediaOpen {
				p.closeMedia()
			}
			mediaOpen = mqID != cssast.NoMediaQueryID
			if mediaOpen {
				p.openMedia(sheet.MediaQueries[mqID])
			}
			currentMedia = mqID
		}

		level := 0
		if mediaOpen {
			level = 1
		}

		if node.At != nil {
			p.printAtRule(node.At, level)
			i++
			continue
		}

		group := p.collectSelectorListGroup(i, isChild)
		p.printRuleGroup(group, level)
		i += len(group)
	}

	if mediaOpen {
		p.closeMedia()
	}
	return p.b.String()
}

// collectSelectorListGroup gathers a maximal run starting at i of
// top-level rules sharing one non-null SelectorListID, the same
// MediaQueryID, and identical declaration sequences, so consecutive rules
// that came from one comma-separated selector can be coalesced back into
// a single "sel1, sel2 { ... }" block.
func (p *printer) collectSelectorListGroup(i int, isChild map[cssast.RuleID]bool) []*cssast.Rule {
	first := p.sheet.Rules[i].Style
	if first == nil || first.SelectorListID == cssast.NoSelectorListID {
		return []*cssast.Rule{first}
	}
	group := []*cssast.Rule{first}
	for j := i + 1; j < len(p.sheet.Rules); j++ {
		node := p.sheet.Rules[j]
		if node.Style == nil || isChild[node.Style.ID] {
			break
		}
		r := node.Style
		if r.SelectorListID != first.SelectorListID || r.MediaQueryID != first.MediaQueryID || !declsEqual(r.Declarations, first.Declarations) {
			break
		}
		group = append(group, r)
	}
	return group
}

func declsEqual(a, b []cssast.Declaration) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// printRuleGroup prints one rule, or a coalesced selector list sharing
// one declaration body. Nested children are only reconstructed for an
// uncoalesced single rule: a selector list whose members have diverged
// enough to need separate child subtrees would no longer share one
// SelectorListID in the first place (see csscascade's reconciliation).
func (p *printer) printRuleGroup(group []*cssast.Rule, level int) {
	if len(group) == 0 || group[0] == nil {
		return
	}
	selectors := make([]string, len(group))
	for i, r := range group {
		selectors[i] = r.Selector
	}
	header := strings.Join(selectors, ", ")

	var children []*cssast.Rule
	if len(group) == 1 {
		children = p.childrenOf[group[0].ID]
	}

	p.printBlock(header, group[0].Declarations, group[0], children, level)
}

// printBlock emits "selector { decls... nested-children... }" in either
// mode.
func (p *printer) printBlock(header string, decls []cssast.Declaration, self *cssast.Rule, children []*cssast.Rule, level int) {
	indent := p.indent(level)
	if p.mode == Compact {
		p.b.WriteString(indent)
		p.b.WriteString(header)
		p.b.WriteString(" {")
		p.printDeclsCompact(decls)
		if len(children) > 0 {
			p.b.WriteByte(' ')
			p.printChildren(self, children, level)
		}
		p.b.WriteString(" }\n")
		return
	}

	p.b.WriteString(indent)
	p.b.WriteString(header)
	p.b.WriteString(" {\n")
	for _, d := range decls {
		p.b.WriteString(p.indent(level + 1))
		p.b.WriteString(formatDecl(d))
		p.b.WriteByte('\n')
	}
	if len(children) > 0 {
		p.printChildren(self, children, level+1)
	}
	p.b.WriteString(indent)
	p.b.WriteString("}\n")
}

// printDeclsCompact writes "prop: value; prop2: value2;" with a single
// leading space, the "{ decl1; decl2; }" shape compact mode targets.
func (p *printer) printDeclsCompact(decls []cssast.Declaration) {
	for _, d := range decls {
		p.b.WriteByte(' ')
		p.b.WriteString(formatDecl(d))
	}
}

// printChildren reconstructs nested child selectors under self using
// each child's recorded NestingStyle, inverting the parse-time
// resolution from cssparse's resolveNestedSelector.
func (p *printer) printChildren(self *cssast.Rule, children []*cssast.Rule, level int) {
	for _, c := range children {
		local := localSelector(self, c)
		grandchildren := p.childrenOf[c.ID]
		p.printBlock(local, c.Declarations, c, grandchildren, level)
	}
}

// localSelector inverts resolveNestedSelector: for an explicit child,
// replace the parent's selector text with "&" (for a child selector that
// begins with a combinator, the space-padded "parent " variant
// cssparse.resolveNestedSelector substitutes in that case); for an
// implicit child, strip the "parent " prefix.
func localSelector(parent, child *cssast.Rule) string {
	if child.NestingStyle == cssast.NestingExplicit {
		startsWithCombinator := child.Selector != "" && strings.IndexByte("+>~", child.Selector[0]) >= 0
		if startsWithCombinator && strings.Contains(child.Selector, parent.Selector+" ") {
			return strings.ReplaceAll(child.Selector, parent.Selector+" ", "&")
		}
		return strings.ReplaceAll(child.Selector, parent.Selector, "&")
	}
	prefix := parent.Selector + " "
	if strings.HasPrefix(child.Selector, prefix) {
		return child.Selector[len(prefix):]
	}
	return child.Selector
}

func formatDecl(d cssast.Declaration) string {
	if d.Important {
		return d.Property + ": " + d.Value + " !important;"
	}
	return d.Property + ": " + d.Value + ";"
}

func (p *printer) indent(level int) string {
	if p.mode == Compact {
		return ""
	}
	return strings.Repeat("  ", level)
}

func (p *printer) openMedia(mq cssast.MediaQuery) {
	p.b.WriteString("@media ")
	p.b.WriteString(mq.Text())
	p.b.WriteString(" {\n")
}

func (p *printer) closeMedia() {
	p.b.WriteString("}\n")
}
