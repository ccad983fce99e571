package cssprinter

import (
	"strings"
	"testing"

	"github.com/jamescook/cataract-sub000/internal/cssast"
	"github.com/jamescook/cataract-sub000/internal/cssparse"
)

func parse(t *testing.T, src string) *cssast.Stylesheet {
	t.Helper()
	sheet, _, err := cssparse.Parse(src, cssparse.DefaultOptions())
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, err)
	}
	return sheet
}

func TestSerializeCompactSimpleRule(t *testing.T) {
	sheet := parse(t, `.a { margin: 1px; }`)
	got := Serialize(sheet, Compact)
	if got != ".a { margin: 1px; }\n" {
		t.Fatalf("Serialize(compact) = %q", got)
	}
}

func TestSerializeCompactMultipleDeclarations(t *testing.T) {
	sheet := parse(t, `.a { color: red; font-weight: bold; }`)
	got := Serialize(sheet, Compact)
	if got != ".a { color: red; font-weight: bold; }\n" {
		t.Fatalf("Serialize(compact) = %q", got)
	}
}

func TestSerializeImportant(t *testing.T) {
	sheet := parse(t, `.a { color: red !important; }`)
	got := Serialize(sheet, Compact)
	if got != ".a { color: red !important; }\n" {
		t.Fatalf("Serialize(compact) = %q", got)
	}
}

func TestSerializeFormattedIndentsDeclarations(t *testing.T) {
	sheet := parse(t, `.a { color: red; }`)
	got := Serialize(sheet, Formatted)
	want := ".a {\n  color: red;\n}\n"
	if got != want {
		t.Fatalf("Serialize(formatted) = %q, want %q", got, want)
	}
}

func TestSerializeCoalescesSelectorList(t *testing.T) {
	sheet := parse(t, `.a, .b { color: red; }`)
	got := Serialize(sheet, Compact)
	if got != ".a, .b { color: red; }\n" {
		t.Fatalf("Serialize(compact) = %q, want coalesced selector list", got)
	}
}

func TestSerializeMediaWraps(t *testing.T) {
	sheet := parse(t, `@media screen { .a { color: red; } }`)
	got := Serialize(sheet, Formatted)
	if !strings.HasPrefix(got, "@media screen {\n") {
		t.Fatalf("expected @media wrapper, got %q", got)
	}
	if !strings.Contains(got, "  .a {\n") {
		t.Fatalf("expected .a nested one indent level under @media, got %q", got)
	}
	if !strings.HasSuffix(got, "}\n") {
		t.Fatalf("expected a closing brace for the @media block, got %q", got)
	}
}

func TestSerializeReconstructsExplicitNesting(t *testing.T) {
	sheet := parse(t, `.parent { color: red; & .child { font-weight: bold; } }`)
	got := Serialize(sheet, Formatted)
	if !strings.Contains(got, "& .child {\n") {
		t.Fatalf("expected reconstructed \"& .child\" nested selector, got %q", got)
	}
}

func TestSerializeReconstructsImplicitNesting(t *testing.T) {
	sheet := parse(t, `.parent { color: red; .child { font-weight: bold; } }`)
	got := Serialize(sheet, Formatted)
	if !strings.Contains(got, "\n  .child {\n") {
		t.Fatalf("expected implicit child printed as bare \".child\", got %q", got)
	}
}

func TestSerializeCharset(t *testing.T) {
	sheet := parse(t, `@charset "UTF-8"; .a { color: red; }`)
	got := Serialize(sheet, Compact)
	if !strings.HasPrefix(got, `@charset "UTF-8";`+"\n") {
		t.Fatalf("expected a leading @charset line, got %q", got)
	}
}

func TestSerializeKeyframes(t *testing.T) {
	sheet := parse(t, `@keyframes spin { 0% { opacity: 0; } 100% { opacity: 1; } }`)
	got := Serialize(sheet, Compact)
	if !strings.Contains(got, "@keyframes spin {") {
		t.Fatalf("expected @keyframes header, got %q", got)
	}
	if !strings.Contains(got, "0% { opacity: 0; }") || !strings.Contains(got, "100% { opacity: 1; }") {
		t.Fatalf("expected both keyframe steps printed, got %q", got)
	}
}
