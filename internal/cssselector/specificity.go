// Package cssselector implements a single operation: specificity(selector)
// -> integer.
//
// Grounded on other_examples/derpies-inliner's css parser, which
// implements the same regex-driven id/class/element counting approach
// (id selectors, class selectors, attribute selectors, pseudo-classes
// vs. pseudo-elements, type selectors) for exactly the same
// email-inlining use case this package targets. This package keeps that
// approach rather than building a full selector-list AST, since full
// CSS3 selector validation beyond syntactic character checks is out of
// scope.
package cssselector

import (
	"regexp"
	"strings"
)

var (
	idRe            = regexp.MustCompile(`#[a-zA-Z0-9_-]+`)
	classRe         = regexp.MustCompile(`\.[a-zA-Z0-9_-]+`)
	attrRe          = regexp.MustCompile(`\[[^\]]*\]`)
	pseudoElementRe = regexp.MustCompile(`::[a-zA-Z0-9_-]+`)
	pseudoClassRe   = regexp.MustCompile(`:[a-zA-Z0-9_-]+`)
	typeRe          = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9-]*`)
)

// combinatorKeywords are tokens that look like bare identifiers inside a
// selector but never count as a type selector.
var combinatorKeywords = map[string]bool{
	"and": true, "or": true, "not": true, "only": true,
}

// Specificity holds the three-tier CSS specificity weight: (id count,
// class/attribute/pseudo-class count, type/pseudo-element count).
type Specificity struct {
	IDs      int
	Classes  int
	Elements int
}

// Int collapses the three tiers into the single base-256 integer that
// specificity(selector) returns, high enough that no realistic selector
// overflows a tier into the next (CSS selectors rarely exceed a few
// hundred simple selectors).
func (s Specificity) Int() int {
	return s.IDs*256*256 + s.Classes*256 + s.Elements
}

// Compute calculates a selector's specificity. It operates on syntactic
// shape only, not full selector validation: a selector containing "&"
// (unresolved nesting, shouldn't normally reach here) contributes 0 for
// that token, and unrecognized punctuation is ignored rather than
// rejected.
func Compute(selector string) int {
	return ComputeDetailed(selector).Int()
}

// ComputeDetailed is Compute's structured form, useful for tests and for
// callers that want to inspect the tiers directly.
func ComputeDetailed(selector string) Specificity {
	var s Specificity

	s.IDs = len(idRe.FindAllString(selector, -1))
	s.Classes += len(classRe.FindAllString(selector, -1))
	s.Classes += len(attrRe.FindAllString(selector, -1))

	// Pseudo-elements are blanked first so ":before" inside "::before"
	// isn't also counted as a pseudo-class.
	withoutPseudoElements := pseudoElementRe.ReplaceAllString(selector, " ")
	s.Classes += len(pseudoClassRe.FindAllString(withoutPseudoElements, -1))
	s.Elements += len(pseudoElementRe.FindAllString(selector, -1))

	// Strip what's already counted so the type-selector pass below
	// doesn't double-count identifiers embedded in a class/id/attribute.
	stripped := idRe.ReplaceAllString(selector, " ")
	stripped = classRe.ReplaceAllString(stripped, " ")
	stripped = attrRe.ReplaceAllString(stripped, " ")
	stripped = pseudoElementRe.ReplaceAllString(stripped, " ")
	stripped = pseudoClassRe.ReplaceAllString(stripped, " ")

	for _, m := range typeRe.FindAllString(stripped, -1) {
		low := strings.ToLower(m)
		if low == "" || low[0] == '-' || combinatorKeywords[low] {
			continue
		}
		s.Elements++
	}

	return s
}
