package cssprinter

import "github.com/jamescook/cataract-sub000/internal/cssast"

// printAtRule emits one opaque at-rule. @keyframes prints its nested
// Rules; @font-face, @page and any other opaque at-rule print a flat
// declaration list.
func (p *printer) printAtRule(at *cssast.AtRule, level int) {
	indent := p.indent(level)
	if len(at.Rules) > 0 {
		p.b.WriteString(indent)
		p.b.WriteString(at.Selector)
		p.b.WriteString(" {\n")
		for _, r := range at.Rules {
			p.printBlock(r.Selector, r.Declarations, &r, nil, level+1)
		}
		p.b.WriteString(indent)
		p.b.WriteString("}\n")
		return
	}

	if p.mode == Compact {
		p.b.WriteString(indent)
		p.b.WriteString(at.Selector)
		p.b.WriteString(" {")
		p.printDeclsCompact(at.Declarations)
		p.b.WriteString(" }\n")
		return
	}

	p.b.WriteString(indent)
	p.b.WriteString(at.Selector)
	p.b.WriteString(" {\n")
	for _, d := range at.Declarations {
		p.b.WriteString(p.indent(level + 1))
		p.b.WriteString(formatDecl(d))
		p.b.WriteByte('\n')
	}
	p.b.WriteString(indent)
	p.b.WriteString("}\n")
}
