package cssselector

import "testing"

func TestComputeDetailed(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		want     Specificity
	}{
		{"type", "div", Specificity{Elements: 1}},
		{"class", ".card", Specificity{Classes: 1}},
		{"id", "#header", Specificity{IDs: 1}},
		{"compound", "div.card#header", Specificity{IDs: 1, Classes: 1, Elements: 1}},
		{"attribute", "a[href]", Specificity{Classes: 1, Elements: 1}},
		{"pseudo-class", "a:hover", Specificity{Classes: 1, Elements: 1}},
		{"pseudo-element", "p::before", Specificity{Elements: 2}},
		{"descendant combinator", ".a .b", Specificity{Classes: 2}},
		{"combinator keyword not counted as type", "a > b", Specificity{Elements: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDetailed(tt.selector)
			if got != tt.want {
				t.Fatalf("ComputeDetailed(%q) = %+v, want %+v", tt.selector, got, tt.want)
			}
		})
	}
}

func TestComputeOrdering(t *testing.T) {
	// An id beats any number of classes, and a class beats any number of
	// type selectors, matching CSS's three-tier specificity comparison.
	if Compute("#a") <= Compute(".b.c.d.e.f.g.h.i.j") {
		t.Fatalf("an id selector must outweigh any number of classes")
	}
	if Compute(".a") <= Compute("div span p a b i u strong em small") {
		t.Fatalf("a class selector must outweigh any number of type selectors")
	}
}
