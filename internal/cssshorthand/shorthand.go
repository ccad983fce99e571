// Package cssshorthand implements a bidirectional shorthand engine:
// expanding a shorthand value into its longhand properties, and
// recreating the tightest shorthand from a set of longhand values.
//
// Grounded on evanw-esbuild/internal/css_parser/css_decls_margin.go,
// css_decls_font.go, css_decls_box.go and friends, which implement the
// same per-property-family mangle/compact passes over a token stream.
// This package adapts that to a plain-string value model (no token AST)
// since the shorthand engine must also work standalone via the public
// expand/create operations below, which take and return strings, not
// esbuild's css_ast.Token values.
//
// Dispatch is a plain switch on the property name rather than esbuild's
// enum (css_ast.D) plus perfect-hash lookup table: the behavior is
// identical either way, and a switch is the idiomatic Go rendering of
// esbuild's "shorthand dispatch by first-character plus strcmp".
package cssshorthand

import "strings"

const importantSuffix = "!important"

// splitImportant detects a trailing "!important" (case-sensitive on the
// literal, free on surrounding whitespace) and returns the value with it
// removed plus whether it was present.
func splitImportant(value string) (string, bool) {
	trimmed := strings.TrimRight(value, " \t\r\n")
	if !strings.HasSuffix(trimmed, importantSuffix) {
		return value, false
	}
	rest := strings.TrimRight(trimmed[:len(trimmed)-len(importantSuffix)], " \t\r\n")
	return rest, true
}

// withImportant re-attaches the "!important" suffix to every value in m,
// propagating the flag to every expanded longhand as text.
func withImportant(m map[string]string, important bool) map[string]string {
	if !important {
		return m
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v + " !important"
	}
	return out
}

// Expand splits a shorthand value into its longhand properties.
// It returns (nil, false) if prop is not a recognized shorthand.
func Expand(prop, value string) (map[string]string, bool) {
	base, important := splitImportant(value)
	base = strings.TrimSpace(base)

	var m map[string]string
	switch strings.ToLower(prop) {
	case "margin":
		m = expandFourSides(base, "margin-top", "margin-right", "margin-bottom", "margin-left")
	case "padding":
		m = expandFourSides(base, "padding-top", "padding-right", "padding-bottom", "padding-left")
	case "border-color":
		m = expandFourSides(base, "border-top-color", "border-right-color", "border-bottom-color", "border-left-color")
	case "border-style":
		m = expandFourSides(base, "border-top-style", "border-right-style", "border-bottom-style", "border-left-style")
	case "border-width":
		m = expandFourSides(base, "border-top-width", "border-right-width", "border-bottom-width", "border-left-width")
	case "border":
		m = expandBorder(base, "")
	case "border-top":
		m = expandBorder(base, "top")
	case "border-right":
		m = expandBorder(base, "right")
	case "border-bottom":
		m = expandBorder(base, "bottom")
	case "border-left":
		m = expandBorder(base, "left")
	case "background":
		m = expandBackground(base)
	case "font":
		m = expandFont(base)
	case "list-style":
		m = expandListStyle(base)
	default:
		return nil, false
	}
	if m == nil {
		return nil, false
	}
	return withImportant(m, important), true
}

// IsShorthand reports whether prop is one of the recognized shorthand
// properties, without doing any expansion work.
func IsShorthand(prop string) bool {
	switch strings.ToLower(prop) {
	case "margin", "padding",
		"border-color", "border-style", "border-width",
		"border", "border-top", "border-right", "border-bottom", "border-left",
		"background", "font", "list-style":
		return true
	default:
		return false
	}
}

// Create recreates the tightest shorthand value from a set of longhand
// properties. kind is one of the same strings IsShorthand/Expand accept.
// It returns ("", false) when the creator declines -- the inputs don't
// qualify for a tight shorthand under that creator's requirements.
func Create(kind string, longhands map[string]string) (string, bool) {
	important, ok := uniformImportant(longhands)
	if !ok {
		return "", false
	}
	stripped := make(map[string]string, len(longhands))
	for k, v := range longhands {
		v, _ = splitImportant(v)
		stripped[k] = strings.TrimSpace(v)
	}

	var value string
	switch strings.ToLower(kind) {
	case "margin":
		value, ok = createFourSides(stripped, "margin-top", "margin-right", "margin-bottom", "margin-left")
	case "padding":
		value, ok = createFourSides(stripped, "padding-top", "padding-right", "padding-bottom", "padding-left")
	case "border-color":
		value, ok = createFourSides(stripped, "border-top-color", "border-right-color", "border-bottom-color", "border-left-color")
	case "border-style":
		value, ok = createFourSides(stripped, "border-top-style", "border-right-style", "border-bottom-style", "border-left-style")
	case "border-width":
		value, ok = createFourSides(stripped, "border-top-width", "border-right-width", "border-bottom-width", "border-left-width")
	case "border":
		value, ok = createBorder(stripped, "")
	case "border-top":
		value, ok = createBorder(stripped, "top")
	case "border-right":
		value, ok = createBorder(stripped, "right")
	case "border-bottom":
		value, ok = createBorder(stripped, "bottom")
	case "border-left":
		value, ok = createBorder(stripped, "left")
	case "background":
		value, ok = createBackground(stripped)
	case "font":
		value, ok = createFont(stripped)
	case "list-style":
		value, ok = createListStyle(stripped)
	default:
		return "", false
	}
	if !ok {
		return "", false
	}
	if important {
		value += " !important"
	}
	return value, true
}

// uniformImportant enforces that all creators refuse if the provided
// longhand values do not share the same !important flag. An empty map
// has no conflict.
func uniformImportant(longhands map[string]string) (important bool, ok bool) {
	first := true
	for _, v := range longhands {
		_, imp := splitImportant(v)
		if first {
			important = imp
			first = false
			continue
		}
		if imp != important {
			return false, false
		}
	}
	return important, true
}

func fields(s string) []string {
	return strings.Fields(s)
}
