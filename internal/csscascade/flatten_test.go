package csscascade

import (
	"testing"

	"github.com/jamescook/cataract-sub000/internal/cssast"
	"github.com/jamescook/cataract-sub000/internal/cssdiag"
	"github.com/jamescook/cataract-sub000/internal/cssparse"
)

func mustParse(t *testing.T, src string) *cssast.Stylesheet {
	t.Helper()
	sheet, _, err := cssparse.Parse(src, cssparse.DefaultOptions())
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, err)
	}
	return sheet
}

func declMap(r *cssast.Rule) map[string]string {
	m := make(map[string]string, len(r.Declarations))
	for _, d := range r.Declarations {
		m[d.Property] = d.Value
	}
	return m
}

func findRule(t *testing.T, sheet *cssast.Stylesheet, selector string) *cssast.Rule {
	t.Helper()
	for _, n := range sheet.Rules {
		if n.Style != nil && n.Style.Selector == selector {
			return n.Style
		}
	}
	t.Fatalf("no rule found for selector %q", selector)
	return nil
}

func TestFlattenGroupsBySelector(t *testing.T) {
	sheet := mustParse(t, `.a { color: red; } .b { color: blue; } .a { font-weight: bold; }`)
	out := Flatten(sheet)

	var count int
	for _, n := range out.Rules {
		if n.Style != nil && n.Style.Selector == ".a" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected .a to be flattened into one rule, found %d", count)
	}

	a := findRule(t, out, ".a")
	m := declMap(a)
	if m["color"] != "red" || m["font-weight"] != "bold" {
		t.Fatalf("unexpected merged declarations for .a: %+v", m)
	}
}

func TestFlattenLaterDeclarationWins(t *testing.T) {
	sheet := mustParse(t, `.a { color: red; } .a { color: blue; }`)
	out := Flatten(sheet)
	a := findRule(t, out, ".a")
	if got := declMap(a)["color"]; got != "blue" {
		t.Fatalf("color = %q, want \"blue\" (later source order should win a tie)", got)
	}
}

func TestMergeImportantBeatsSpecificity(t *testing.T) {
	sheet := mustParse(t, `.a { color: red !important; } #id.a { color: blue; }`)
	out := Merge(sheet)
	a := out.Rules[0].Style
	if got := declMap(a)["color"]; got != "red" {
		t.Fatalf("color = %q, want \"red\" (!important should beat higher specificity)", got)
	}
}

func TestFlattenKeepsDifferentSelectorsSeparate(t *testing.T) {
	sheet := mustParse(t, `#id { color: red; } .a#id { color: blue; }`)
	out := Flatten(sheet)
	if len(out.Rules) != 2 {
		t.Fatalf("expected #id and .a#id to stay as distinct selector groups, got %d rules", len(out.Rules))
	}
}

func TestFlattenRecreatesShorthand(t *testing.T) {
	sheet := mustParse(t, `.a { margin-top: 1px; margin-right: 1px; margin-bottom: 1px; margin-left: 1px; }`)
	out := Flatten(sheet)
	a := findRule(t, out, ".a")
	m := declMap(a)
	if m["margin"] != "1px" {
		t.Fatalf("expected margin longhands to recreate into shorthand \"1px\", got %+v", m)
	}
	if _, ok := m["margin-top"]; ok {
		t.Fatalf("expected margin-top longhand to be consumed by recreation")
	}
}

func TestFlattenDoesNotRecreateListStyleFromOneLonghand(t *testing.T) {
	sheet := mustParse(t, `.a { list-style-type: disc; }`)
	out := Flatten(sheet)
	a := findRule(t, out, ".a")
	m := declMap(a)
	if _, ok := m["list-style"]; ok {
		t.Fatalf("expected a single list-style longhand not to recreate the shorthand, got %+v", m)
	}
	if m["list-style-type"] != "disc" {
		t.Fatalf("expected list-style-type to survive untouched, got %+v", m)
	}
}

func TestFlattenRecreatesListStyleFromTwoLonghands(t *testing.T) {
	sheet := mustParse(t, `.a { list-style-type: disc; list-style-position: inside; }`)
	out := Flatten(sheet)
	a := findRule(t, out, ".a")
	m := declMap(a)
	if m["list-style"] != "disc inside" {
		t.Fatalf("expected list-style longhands to recreate into the shorthand, got %+v", m)
	}
	if _, ok := m["list-style-type"]; ok {
		t.Fatalf("expected list-style-type longhand to be consumed by recreation")
	}
}

func TestFlattenTracedReportsRuleCounts(t *testing.T) {
	sheet := mustParse(t, `.a { color: red; } .b { color: blue; }`)
	out := FlattenTraced(sheet, cssdiag.NoopTracer())
	if len(out.Rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(out.Rules))
	}
}

func TestMergeTracedReportsRuleCounts(t *testing.T) {
	sheet := mustParse(t, `.a { color: red; } .b { font-weight: bold; }`)
	out := MergeTraced(sheet, cssdiag.NoopTracer())
	if len(out.Rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(out.Rules))
	}
}

func TestFlattenDropsEmptyNestingContainers(t *testing.T) {
	sheet := mustParse(t, `.parent { & .child { color: red; } }`)
	out := Flatten(sheet)
	for _, n := range out.Rules {
		if n.Style != nil && n.Style.Selector == ".parent" {
			t.Fatalf("expected the empty nesting container .parent to be dropped by flatten")
		}
	}
	findRule(t, out, ".parent .child")
}

func TestFlattenClearsMediaIndexAndMediaQueryID(t *testing.T) {
	sheet := mustParse(t, `@media screen { .a { color: red; } }`)
	out := Flatten(sheet)
	if len(out.MediaIndex) != 0 {
		t.Fatalf("expected flatten to reset MediaIndex, got %+v", out.MediaIndex)
	}
	a := findRule(t, out, ".a")
	if a.MediaQueryID != cssast.NoMediaQueryID {
		t.Fatalf("expected flattened rule to drop its MediaQueryID")
	}
}

func TestFlattenSelectorListSurvivesIdenticalGroups(t *testing.T) {
	sheet := mustParse(t, `.a, .b { color: red; }`)
	out := Flatten(sheet)
	a := findRule(t, out, ".a")
	b := findRule(t, out, ".b")
	if a.SelectorListID == cssast.NoSelectorListID || a.SelectorListID != b.SelectorListID {
		t.Fatalf("expected .a and .b to keep a shared selector list id after flatten")
	}
}

func TestFlattenSelectorListDivergesOnConflictingOverride(t *testing.T) {
	sheet := mustParse(t, `.a, .b { color: red; } .a { color: blue; }`)
	out := Flatten(sheet)
	a := findRule(t, out, ".a")
	b := findRule(t, out, ".b")
	if a.SelectorListID != cssast.NoSelectorListID {
		t.Fatalf("expected .a's selector list id to be cleared once its declarations diverged from .b's")
	}
	if b.SelectorListID != cssast.NoSelectorListID {
		t.Fatalf("expected .b's selector list id to be cleared once its only surviving partner left the group")
	}
}

func TestMergeSingleSelectorKeepsIt(t *testing.T) {
	sheet := mustParse(t, `.a { color: red; } .a { font-weight: bold; }`)
	out := Merge(sheet)
	if len(out.Rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(out.Rules))
	}
	r := out.Rules[0].Style
	if r.Selector != ".a" {
		t.Fatalf("Selector = %q, want \".a\"", r.Selector)
	}
	m := declMap(r)
	if m["color"] != "red" || m["font-weight"] != "bold" {
		t.Fatalf("unexpected merged declarations: %+v", m)
	}
}

func TestMergeDivergentSelectorsFallBackToMerged(t *testing.T) {
	sheet := mustParse(t, `.a { color: red; } .b { font-weight: bold; }`)
	out := Merge(sheet)
	if len(out.Rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(out.Rules))
	}
	if out.Rules[0].Style.Selector != "merged" {
		t.Fatalf("Selector = %q, want \"merged\"", out.Rules[0].Style.Selector)
	}
}
