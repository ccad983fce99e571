package css

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/multierr"
)

func TestParseSimpleRule(t *testing.T) {
	sheet, diags, err := Parse("a { color: red; }", DefaultOptions())
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("Parse returned %d diagnostics, want 0: %v", len(diags), diags)
	}
	if len(sheet.Rules) != 1 {
		t.Fatalf("sheet has %d rules, want 1", len(sheet.Rules))
	}
}

func TestParseStrictRejectsMalformedDeclaration(t *testing.T) {
	opts := DefaultOptions()
	opts.Strict = StrictAll()
	_, _, err := Parse("a { color }", opts)
	if err == nil {
		t.Fatal("Parse returned no error for malformed declaration under strict mode")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error is %T, want *ParseError", err)
	}
	if pe.Kind() != "parse error" {
		t.Errorf("Kind() = %q, want %q", pe.Kind(), "parse error")
	}
	if pe.Type() == "" {
		t.Error("Type() is empty, want a symbolic tag")
	}
}

func TestParseTolerantRecoversWithDiagnostics(t *testing.T) {
	sheet, diags, err := Parse("a { color }\nb { color: blue; }", DefaultOptions())
	if err != nil {
		t.Fatalf("Parse returned error under tolerant mode: %v", err)
	}
	if len(diags) == 0 {
		t.Fatal("Parse recovered silently, want at least one diagnostic")
	}
	if len(sheet.Rules) != 2 {
		t.Fatalf("sheet has %d rules, want 2 (one recovered, one clean)", len(sheet.Rules))
	}
}

func TestDiagnosticsCombinedNilWhenEmpty(t *testing.T) {
	var d Diagnostics
	if d.Combined() != nil {
		t.Error("Combined() on empty Diagnostics is not nil")
	}
}

func TestDiagnosticsCombinedWrapsEveryEntry(t *testing.T) {
	d := Diagnostics{
		{Text: "first", Pos: 1},
		{Text: "second", Pos: 2},
	}
	err := d.Combined()
	if err == nil {
		t.Fatal("Combined() is nil, want a non-nil error")
	}
	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("Combined() unwraps to %d errors, want 2", len(errs))
	}
	if !strings.Contains(err.Error(), "first") || !strings.Contains(err.Error(), "second") {
		t.Errorf("Combined().Error() = %q, missing a diagnostic's text", err.Error())
	}
}

func TestFlattenMergesDuplicateSelectors(t *testing.T) {
	sheet, _, err := Parse("a { color: red; } a { color: blue; }", DefaultOptions())
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	flat := Flatten(sheet)
	if len(flat.Rules) != 1 {
		t.Fatalf("Flatten produced %d rules, want 1", len(flat.Rules))
	}
}

func TestMergeCollapsesToOneRule(t *testing.T) {
	sheet, _, err := Parse("a { color: red; } b { font-weight: bold; }", DefaultOptions())
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	merged := Merge(sheet)
	if len(merged.Rules) != 1 {
		t.Fatalf("Merge produced %d rules, want 1", len(merged.Rules))
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	sheet, _, err := Parse("a { color: red; }", DefaultOptions())
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	out := Serialize(sheet, Compact)
	if !strings.Contains(out, "color:red") && !strings.Contains(out, "color: red") {
		t.Errorf("Serialize(Compact) = %q, missing the declaration", out)
	}
}

func TestExpandAndCreateShorthandRoundTrip(t *testing.T) {
	longhands, ok := ExpandShorthand("margin", "1px 2px 3px 4px")
	if !ok {
		t.Fatal("ExpandShorthand(margin) returned ok=false")
	}
	value, ok := CreateShorthand("margin", longhands)
	if !ok {
		t.Fatal("CreateShorthand(margin) returned ok=false")
	}
	if value == "" {
		t.Error("CreateShorthand(margin) returned empty value")
	}
}

func TestIsShorthandProperty(t *testing.T) {
	if !IsShorthandProperty("margin") {
		t.Error("IsShorthandProperty(margin) = false, want true")
	}
	if IsShorthandProperty("color") {
		t.Error("IsShorthandProperty(color) = true, want false")
	}
}

func TestSpecificity(t *testing.T) {
	if Specificity("#id") <= Specificity(".class") {
		t.Error("Specificity(#id) should outweigh Specificity(.class)")
	}
}
