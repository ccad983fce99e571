// Package cssast defines the flat rule-table data model: Rule,
// Declaration, AtRule, MediaQuery, ImportStatement and the Stylesheet
// container that cross-references them by integer id.
//
// Grounded on evanw-esbuild/internal/css_ast.go's sum-type pattern for
// "a CSS thing can be a rule or an at-rule", adapted from esbuild's
// interface-tagged R/SS variants to a tagged RuleNode struct: a Rule here
// carries stable integer ids other rules reference (parent_rule_id,
// selector_list_id), which an interface-only sum type can't index into as
// cheaply as a flat slice can.
package cssast

// NestingStyle records how a Rule came to exist relative to its parent.
type NestingStyle uint8

const (
	// NestingNone is used for top-level rules with no enclosing rule.
	NestingNone NestingStyle = iota
	// NestingImplicit is used when a nested selector had no "&" and was
	// resolved as "parent + \" \" + nested".
	NestingImplicit
	// NestingExplicit is used when a nested selector contained "&".
	NestingExplicit
)

func (n NestingStyle) String() string {
	switch n {
	case NestingImplicit:
		return "implicit"
	case NestingExplicit:
		return "explicit"
	default:
		return "none"
	}
}

// Declaration is a single `property: value [!important]` pair.
//
// Property is ASCII-lowercased unless it begins with "--" (a custom
// property). Value is stored verbatim UTF-8, already trimmed and already
// URL-rewritten if rewriting was active.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// IsCustomProperty reports whether this declaration's property is a
// CSS custom property (`--name`), which is case-sensitive and therefore
// exempt from the lowercasing otherwise applied to property names.
func (d Declaration) IsCustomProperty() bool {
	return len(d.Property) >= 2 && d.Property[0] == '-' && d.Property[1] == '-'
}

// RuleID identifies a Rule or AtRule by its position in Stylesheet.Rules.
// -1 is the sentinel for "no id" used by optional reference fields.
type RuleID int32

const NoRuleID RuleID = -1

// MediaQueryID identifies a MediaQuery within Stylesheet.MediaQueries.
type MediaQueryID int32

const NoMediaQueryID MediaQueryID = -1

// MediaQueryListID groups one or more MediaQueryIDs that came from a
// single comma-separated `@media a, b` prelude, keyed into
// Stylesheet.MediaQueryLists.
type MediaQueryListID int32

const NoMediaQueryListID MediaQueryListID = -1

// SelectorListID groups RuleIDs that came from one comma-separated
// selector list (`.a, .b { ... }`), keyed into Stylesheet.SelectorLists.
type SelectorListID int32

const NoSelectorListID SelectorListID = -1

// Rule is a style rule: a selector plus its ordered declarations.
type Rule struct {
	ID              RuleID
	Selector        string
	Declarations    []Declaration
	specificity     int
	specificitySet  bool
	ParentRuleID    RuleID
	NestingStyle    NestingStyle
	SelectorListID  SelectorListID
	MediaQueryID    MediaQueryID
}

// Specificity lazily computes and caches this rule's selector specificity
// using compute. compute is injected rather than imported directly so
// cssast has no dependency on cssselector (which would otherwise be a
// dependency cycle candidate once cssselector grows selector-aware
// helpers that want the AST types).
func (r *Rule) Specificity(compute func(selector string) int) int {
	if !r.specificitySet {
		r.specificity = compute(r.Selector)
		r.specificitySet = true
	}
	return r.specificity
}

// HasParent reports whether this rule came from CSS nesting.
func (r *Rule) HasParent() bool { return r.ParentRuleID != NoRuleID }

// InSelectorList reports whether this rule is still grouped under a
// comma-separated selector list.
func (r *Rule) InSelectorList() bool { return r.SelectorListID != NoSelectorListID }

// AtRule is an opaque-content at-rule (`@keyframes`, `@font-face`,
// `@page`, ...). Exactly one of Rules or Declarations is populated
// depending on whether the at-rule's body is itself a sequence of rules
// (`@keyframes`) or a flat declaration list (`@font-face`).
type AtRule struct {
	ID           RuleID
	Selector     string // the full "@name prelude" text
	Rules        []Rule
	Declarations []Declaration
	MediaQueryID MediaQueryID
}

// MediaQuery is one interned `@media` condition.
type MediaQuery struct {
	ID         MediaQueryID
	Type       string // interned symbol, e.g. "screen", "print", "all"
	Conditions string // optional textual expression, e.g. "(min-width: 500px)"
}

// Text reconstructs the full media query text ("screen and (min-width:
// 500px)") for serialization.
func (m MediaQuery) Text() string {
	if m.Conditions == "" {
		return m.Type
	}
	if m.Type == "" {
		return m.Conditions
	}
	return m.Type + " and " + m.Conditions
}

// ImportStatement is one `@import` entry parsed before any rule.
type ImportStatement struct {
	ID               RuleID
	URL              string
	MediaText        string
	MediaQueryListID MediaQueryListID
	Resolved         string // set by URL rewriting, empty if none was configured
}

// RuleNode is a tagged variant over {Rule, AtRule}, replacing the loose
// AtRule-vs-Rule duck typing a dynamic-language engine would use with an
// explicit sum type. Exactly one of Style/At is non-nil.
type RuleNode struct {
	Style *Rule
	At    *AtRule
}

// ID returns the underlying Rule's or AtRule's id.
func (n RuleNode) ID() RuleID {
	if n.Style != nil {
		return n.Style.ID
	}
	return n.At.ID
}

// Stylesheet is the container a parse produces and a flatten consumes and
// reproduces.
type Stylesheet struct {
	// Rules holds Rule and AtRule nodes interleaved in source order.
	// Invariant: Rules[i].ID() == RuleID(i) always.
	Rules []RuleNode

	Imports []ImportStatement

	// MediaQueries is indexed by MediaQueryID.
	MediaQueries []MediaQuery

	// MediaQueryLists maps a MediaQueryListID to the sequence of
	// MediaQueryIDs it groups, reconstructing comma-separated
	// `@media screen, print` preludes.
	MediaQueryLists map[MediaQueryListID][]MediaQueryID

	// SelectorLists maps a SelectorListID to the RuleIDs that share it.
	SelectorLists map[SelectorListID][]RuleID

	// MediaIndex maps a MediaQuery type symbol to the RuleIDs indexed
	// under it; a comma-separated `@media screen, print` indexes each
	// rule under both "screen" and "print".
	MediaIndex map[string][]RuleID

	Charset string

	// HasNesting is true iff at least one Rule carries a non-null
	// ParentRuleID.
	HasNesting bool

	LastRuleID RuleID

	// ParseID stamps this stylesheet with a correlation key for a
	// parse -> flatten -> serialize pipeline run. It has no bearing on
	// equality or any data-model invariant; it exists purely for
	// external tracing.
	ParseID string
}

// NewStylesheet returns an empty Stylesheet with its maps initialized.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{
		MediaQueryLists: make(map[MediaQueryListID][]MediaQueryID),
		SelectorLists:   make(map[SelectorListID][]RuleID),
		MediaIndex:      make(map[string][]RuleID),
		LastRuleID:      NoRuleID,
	}
}

// Stats is a debugging rollup over a stylesheet's rule table, grounded on
// rupor-github-fb2cng/convert/kfx/style_tracer.go's style-resolution
// counters.
type Stats struct {
	RuleCount       int
	AtRuleCount     int
	ImportCount     int
	MaxNestingDepth int
}

// Stats computes a rollup over the current rule table. It's O(n) in the
// number of rules and meant for diagnostics, not the hot path.
func (s *Stylesheet) Stats() Stats {
	var st Stats
	depthOf := make(map[RuleID]int, len(s.Rules))
	for _, node := range s.Rules {
		if node.At != nil {
			st.AtRuleCount++
			continue
		}
		st.RuleCount++
		r := node.Style
		depth := 0
		if r.HasParent() {
			depth = depthOf[r.ParentRuleID] + 1
		}
		depthOf[r.ID] = depth
		if depth > st.MaxNestingDepth {
			st.MaxNestingDepth = depth
		}
	}
	st.ImportCount = len(s.Imports)
	return st
}

// RuleByID returns the Rule with the given id, or nil if id refers to an
// AtRule or is out of range.
func (s *Stylesheet) RuleByID(id RuleID) *Rule {
	if id < 0 || int(id) >= len(s.Rules) {
		return nil
	}
	return s.Rules[id].Style
}
