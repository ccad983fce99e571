package csscascade

import (
	"github.com/jamescook/cataract-sub000/internal/cssast"
	"github.com/jamescook/cataract-sub000/internal/cssdiag"
	"github.com/jamescook/cataract-sub000/internal/cssselector"
)

// Merge rolls every rule's declarations into one working table, recreates
// shorthands, and emits a single Rule whose selector is the common
// selector shared by every input rule, or the literal "merged" if they
// differ.
//
// This coexists with Flatten as a distinct operation rather than a mode
// flag on it: callers that want "what wins for this one combined rule"
// (e.g. an email-inliner collapsing matches into one inline style
// attribute) have a different output shape than callers that want the
// general per-selector simplification Flatten produces.
func Merge(sheet *cssast.Stylesheet) *cssast.Stylesheet {
	return MergeTraced(sheet, cssdiag.NoopTracer())
}

// MergeTraced is Merge with an explicit Tracer, for callers that want the
// "rule counts" debug breadcrumb alongside a parser using the same
// zap.Logger (see cssdiag.NewTracer).
func MergeTraced(sheet *cssast.Stylesheet, tracer cssdiag.Tracer) *cssast.Stylesheet {
	out := cssast.NewStylesheet()
	out.Imports = sheet.Imports
	out.MediaQueries = sheet.MediaQueries
	out.Charset = sheet.Charset
	out.ParseID = sheet.ParseID

	table := newOrderedTable()
	commonSelector := ""
	sawSelector := false
	diverged := false
	inputRules := 0

	for _, node := range sheet.Rules {
		if node.At != nil {
			continue
		}
		r := node.Style
		inputRules++
		if !sawSelector {
			commonSelector = r.Selector
			sawSelector = true
		} else if r.Selector != commonSelector {
			diverged = true
		}
		specificity := r.Specificity(cssselector.Compute)
		for j, d := range r.Declarations {
			sourceOrder := int(r.ID)*1000 + j
			applyDeclaration(table, d, specificity, sourceOrder)
		}
	}

	recreateShorthands(table)

	var decls []cssast.Declaration
	for _, prop := range table.properties() {
		e, _ := table.get(prop)
		decls = append(decls, cssast.Declaration{Property: prop, Value: e.value, Important: e.important})
	}

	selector := "merged"
	if sawSelector && !diverged {
		selector = commonSelector
	}

	out.Rules = append(out.Rules, cssast.RuleNode{Style: &cssast.Rule{
		ID:             0,
		Selector:       selector,
		Declarations:   decls,
		ParentRuleID:   cssast.NoRuleID,
		NestingStyle:   cssast.NestingNone,
		SelectorListID: cssast.NoSelectorListID,
		MediaQueryID:   cssast.NoMediaQueryID,
	}})
	out.LastRuleID = 0
	out.MediaIndex["all"] = []cssast.RuleID{0}
	tracer.Flattened(inputRules, 1)
	return out
}
