package cssshorthand

import "testing"

func TestExpandFont(t *testing.T) {
	got, ok := Expand("font", "italic bold 12px/1.5 Arial, sans-serif")
	if !ok {
		t.Fatalf("Expand(font, ...) returned ok=false")
	}
	want := map[string]string{
		"font-style":   "italic",
		"font-variant": "normal",
		"font-weight":  "bold",
		"font-size":    "12px",
		"line-height":  "1.5",
		"font-family":  "Arial, sans-serif",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("got[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestExpandFontMinimal(t *testing.T) {
	got, ok := Expand("font", "12px Arial")
	if !ok {
		t.Fatalf("Expand(font, ...) returned ok=false")
	}
	if got["font-size"] != "12px" || got["font-family"] != "Arial" {
		t.Fatalf("unexpected expansion: %+v", got)
	}
	if got["line-height"] != "normal" {
		t.Errorf("line-height default = %q, want \"normal\"", got["line-height"])
	}
}

func TestExpandFontRequiresSizeAndFamily(t *testing.T) {
	if _, ok := Expand("font", "bold italic"); ok {
		t.Fatalf("Expand(font, ...) should decline without a size token")
	}
	if _, ok := Expand("font", "12px"); ok {
		t.Fatalf("Expand(font, ...) should decline without a family")
	}
}

func TestCreateFontOmitsNormalValues(t *testing.T) {
	got, ok := Create("font", map[string]string{
		"font-size":    "12px",
		"font-family":  "Arial",
		"font-style":   "normal",
		"font-variant": "normal",
		"font-weight":  "normal",
		"line-height":  "normal",
	})
	if !ok {
		t.Fatalf("Create(font, ...) returned ok=false")
	}
	if got != "12px Arial" {
		t.Errorf("Create(font, all-normal) = %q, want \"12px Arial\"", got)
	}
}

func TestExpandCreateFontRoundTrip(t *testing.T) {
	expanded, ok := Expand("font", "bold 12px/1.5 Arial")
	if !ok {
		t.Fatalf("Expand failed")
	}
	recreated, ok := Create("font", expanded)
	if !ok {
		t.Fatalf("Create failed")
	}
	if recreated != "bold 12px/1.5 Arial" {
		t.Errorf("round trip = %q, want \"bold 12px/1.5 Arial\"", recreated)
	}
}
