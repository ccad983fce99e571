package csscascade

import (
	"github.com/jamescook/cataract-sub000/internal/cssast"
	"github.com/jamescook/cataract-sub000/internal/cssdiag"
	"github.com/jamescook/cataract-sub000/internal/cssselector"
	"github.com/jamescook/cataract-sub000/internal/cssshorthand"
)

// emittedRule tracks one flattened-group output rule long enough to run
// the later selector-list divergence reconciliation pass against it.
type emittedRule struct {
	ruleID        cssast.RuleID
	decls         []cssast.Declaration
	candidateList cssast.SelectorListID
}

// Flatten collapses a stylesheet to one rule per distinct selector,
// resolving the cascade and recreating shorthands along the way.
func Flatten(sheet *cssast.Stylesheet) *cssast.Stylesheet {
	return FlattenTraced(sheet, cssdiag.NoopTracer())
}

// FlattenTraced is Flatten with an explicit Tracer, for callers that want
// the "rule counts" debug breadcrumb alongside a parser using the same
// zap.Logger (see cssdiag.NewTracer).
func FlattenTraced(sheet *cssast.Stylesheet, tracer cssdiag.Tracer) *cssast.Stylesheet {
	out := cssast.NewStylesheet()
	out.Imports = sheet.Imports
	out.MediaQueries = sheet.MediaQueries
	out.Charset = sheet.Charset
	out.ParseID = sheet.ParseID

	// Step 1: partition. AtRules pass through, renumbered. Style rules
	// with a non-empty declaration list form group (c); pure nesting
	// containers (empty declarations, present only to hold children) are
	// naturally excluded by that same filter.
	type groupInfo struct {
		selector string
		rules    []*cssast.Rule
	}
	var groups []*groupInfo
	groupIndex := make(map[string]int)

	for _, node := range sheet.Rules {
		if node.At != nil {
			id := cssast.RuleID(len(out.Rules))
			at := *node.At
			at.ID = id
			out.Rules = append(out.Rules, cssast.RuleNode{At: &at})
			continue
		}
		r := node.Style
		if len(r.Declarations) == 0 {
			continue
		}
		idx, ok := groupIndex[r.Selector]
		if !ok {
			idx = len(groups)
			groupIndex[r.Selector] = idx
			groups = append(groups, &groupInfo{selector: r.Selector})
		}
		groups[idx].rules = append(groups[idx].rules, r)
	}

	var emittedRules []emittedRule

	// Steps 2-5: per selector group, cascade then recreate shorthands.
	for _, g := range groups {
		table := newOrderedTable()
		for _, r := range g.rules {
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

		candidateList := cssast.NoSelectorListID
		if len(g.rules) > 0 {
			candidateList = g.rules[0].SelectorListID
			for _, r := range g.rules {
				if r.SelectorListID != candidateList {
					candidateList = cssast.NoSelectorListID
					break
				}
			}
		}

		id := cssast.RuleID(len(out.Rules))
		out.Rules = append(out.Rules, cssast.RuleNode{Style: &cssast.Rule{
			ID:             id,
			Selector:       g.selector,
			Declarations:   decls,
			ParentRuleID:   cssast.NoRuleID,
			NestingStyle:   cssast.NestingNone,
			SelectorListID: candidateList,
			MediaQueryID:   cssast.NoMediaQueryID,
		}})
		emittedRules = append(emittedRules, emittedRule{
			ruleID:        id,
			decls:         decls,
			candidateList: candidateList,
		})
	}
	out.LastRuleID = cssast.RuleID(len(out.Rules) - 1)
	if out.LastRuleID < 0 {
		out.LastRuleID = cssast.NoRuleID
	}

	// Step 6: divergence reconciliation.
	reconcileSelectorLists(out, emittedRules)

	tracer.Flattened(len(groups), len(out.Rules))

	// Step 7: media_index reset to empty (already true: out.MediaIndex
	// starts empty and nothing above populates it).
	return out
}

// applyDeclaration feeds one declaration into the working table,
// expanding it first if it's a recognized shorthand.
func applyDeclaration(table *orderedTable, d cssast.Declaration, specificity, sourceOrder int) {
	if cssshorthand.IsShorthand(d.Property) {
		raw := addImportant(d.Value, d.Important)
		if expanded, ok := cssshorthand.Expand(d.Property, raw); ok {
			for prop, val := range expanded {
				clean, important := stripImportant(val)
				table.apply(prop, important, specificity, sourceOrder, clean)
			}
			return
		}
	}
	table.apply(d.Property, d.Important, specificity, sourceOrder, d.Value)
}

// reconcileSelectorLists groups emitted rules by their candidate
// selector_list_id, keeping the id only on rules whose declaration
// sequence exactly matches the group's first member, and clearing it
// everywhere else (including when only one survivor remains).
func reconcileSelectorLists(out *cssast.Stylesheet, emittedRules []emittedRule) {
	byList := make(map[cssast.SelectorListID][]int)
	for i, e := range emittedRules {
		if e.candidateList == cssast.NoSelectorListID {
			continue
		}
		byList[e.candidateList] = append(byList[e.candidateList], i)
	}

	for listID, idxs := range byList {
		if len(idxs) < 2 {
			clearSelectorListID(out, emittedRules[idxs[0]].ruleID)
			continue
		}
		reference := emittedRules[idxs[0]].decls
		var survivors []cssast.RuleID
		for _, i := range idxs {
			if declsEqual(reference, emittedRules[i].decls) {
				survivors = append(survivors, emittedRules[i].ruleID)
			} else {
				clearSelectorListID(out, emittedRules[i].ruleID)
			}
		}
		if len(survivors) < 2 {
			for _, id := range survivors {
				clearSelectorListID(out, id)
			}
			continue
		}
		out.SelectorLists[listID] = survivors
	}
}

func clearSelectorListID(out *cssast.Stylesheet, id cssast.RuleID) {
	if r := out.RuleByID(id); r != nil {
		r.SelectorListID = cssast.NoSelectorListID
	}
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
