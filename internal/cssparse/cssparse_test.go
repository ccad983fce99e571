package cssparse

import (
	"testing"

	"github.com/jamescook/cataract-sub000/internal/cssast"
)

func mustParse(t *testing.T, src string) *cssast.Stylesheet {
	t.Helper()
	sheet, _, err := Parse(src, DefaultOptions())
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, err)
	}
	return sheet
}

func TestParseSimpleRule(t *testing.T) {
	sheet := mustParse(t, `.a { color: red; margin: 1px 2px; }`)
	if len(sheet.Rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(sheet.Rules))
	}
	rule := sheet.Rules[0].Style
	if rule == nil || rule.Selector != ".a" {
		t.Fatalf("unexpected rule: %+v", rule)
	}
	if len(rule.Declarations) != 2 {
		t.Fatalf("got %d declarations, want 2", len(rule.Declarations))
	}
	if rule.Declarations[0].Property != "color" || rule.Declarations[0].Value != "red" {
		t.Errorf("unexpected first declaration: %+v", rule.Declarations[0])
	}
}

func TestParseImportantDeclaration(t *testing.T) {
	sheet := mustParse(t, `.a { color: red !important; }`)
	d := sheet.Rules[0].Style.Declarations[0]
	if !d.Important || d.Value != "red" {
		t.Fatalf("unexpected declaration: %+v", d)
	}
}

func TestParseStripsValueComments(t *testing.T) {
	sheet := mustParse(t, `.a { color: /* note */ red; }`)
	d := sheet.Rules[0].Style.Declarations[0]
	if d.Value != "red" {
		t.Fatalf("value = %q, want \"red\" (comment should be stripped)", d.Value)
	}
}

func TestParseCustomPropertyKeepsCase(t *testing.T) {
	sheet := mustParse(t, `.a { --MyVar: 1px; }`)
	d := sheet.Rules[0].Style.Declarations[0]
	if d.Property != "--MyVar" {
		t.Fatalf("custom property case was altered: %q", d.Property)
	}
}

func TestParseExplicitNesting(t *testing.T) {
	sheet := mustParse(t, `.parent { color: red; & .child { font-weight: bold; } }`)
	if len(sheet.Rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(sheet.Rules))
	}
	child := sheet.Rules[1].Style
	if child.Selector != ".parent .child" {
		t.Fatalf("resolved child selector = %q, want \".parent .child\"", child.Selector)
	}
	if child.NestingStyle != cssast.NestingExplicit {
		t.Errorf("NestingStyle = %v, want explicit", child.NestingStyle)
	}
}

func TestParseImplicitNesting(t *testing.T) {
	sheet := mustParse(t, `.parent { color: red; .child { font-weight: bold; } }`)
	child := sheet.Rules[1].Style
	if child.Selector != ".parent .child" {
		t.Fatalf("resolved child selector = %q, want \".parent .child\"", child.Selector)
	}
	if child.NestingStyle != cssast.NestingImplicit {
		t.Errorf("NestingStyle = %v, want implicit", child.NestingStyle)
	}
}

func TestParseMediaIndexesBothTypes(t *testing.T) {
	sheet := mustParse(t, `@media screen, print { .a { color: red; } }`)
	if len(sheet.MediaIndex["screen"]) != 1 || len(sheet.MediaIndex["print"]) != 1 {
		t.Fatalf("MediaIndex = %+v, want one rule under both screen and print", sheet.MediaIndex)
	}
}

func TestParseNestedMediaCombinesConditions(t *testing.T) {
	sheet := mustParse(t, `@media screen { @media (min-width: 500px) { .a { color: red; } } }`)
	rule := sheet.Rules[0].Style
	mq := sheet.MediaQueries[rule.MediaQueryID]
	if mq.Text() != "screen and (min-width: 500px)" {
		t.Fatalf("combined media text = %q", mq.Text())
	}
}

func TestParseSelectorList(t *testing.T) {
	sheet := mustParse(t, `.a, .b { color: red; }`)
	if len(sheet.Rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(sheet.Rules))
	}
	a := sheet.Rules[0].Style
	b := sheet.Rules[1].Style
	if a.SelectorListID == cssast.NoSelectorListID || a.SelectorListID != b.SelectorListID {
		t.Fatalf("expected both rules to share a selector list id, got %d and %d", a.SelectorListID, b.SelectorListID)
	}
}

func TestParseCharset(t *testing.T) {
	sheet := mustParse(t, `@charset "UTF-8"; .a { color: red; }`)
	if sheet.Charset != "UTF-8" {
		t.Fatalf("Charset = %q, want \"UTF-8\"", sheet.Charset)
	}
}

func TestParseImportWithMedia(t *testing.T) {
	sheet := mustParse(t, `@import "theme.css" screen, print;`)
	if len(sheet.Imports) != 1 {
		t.Fatalf("got %d imports, want 1", len(sheet.Imports))
	}
	if sheet.Imports[0].URL != "theme.css" {
		t.Fatalf("import URL = %q", sheet.Imports[0].URL)
	}
}

func TestParseKeyframes(t *testing.T) {
	sheet := mustParse(t, `@keyframes spin { 0% { opacity: 0; } 100% { opacity: 1; } }`)
	if len(sheet.Rules) != 1 || sheet.Rules[0].At == nil {
		t.Fatalf("expected a single AtRule")
	}
	at := sheet.Rules[0].At
	if len(at.Rules) != 2 {
		t.Fatalf("got %d keyframe rules, want 2", len(at.Rules))
	}
}

func TestParseStrictModeRejectsMalformedDeclaration(t *testing.T) {
	opts := DefaultOptions()
	opts.Strict.MalformedDeclarations = true
	_, _, err := Parse(`.a { not-a-declaration }`, opts)
	if err == nil {
		t.Fatalf("expected a strict-mode error for a declaration missing ':'")
	}
}

func TestParseTolerantModeRecovers(t *testing.T) {
	sheet, msgs, err := Parse(`.a { not-a-declaration; color: red; }`, DefaultOptions())
	if err != nil {
		t.Fatalf("tolerant parse should not fail: %v", err)
	}
	if len(msgs) == 0 {
		t.Fatalf("expected a warning for the skipped malformed declaration")
	}
	if len(sheet.Rules[0].Style.Declarations) != 1 {
		t.Fatalf("expected recovery to still capture the valid declaration")
	}
}
