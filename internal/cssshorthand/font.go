package cssshorthand

import "strings"

var fontStyleKeywords = map[string]bool{"normal": true, "italic": true, "oblique": true}
var fontVariantKeywords = map[string]bool{"normal": true, "small-caps": true}
var fontWeightKeywords = map[string]bool{
	"normal": true, "bold": true, "bolder": true, "lighter": true,
	"100": true, "200": true, "300": true, "400": true, "500": true,
	"600": true, "700": true, "800": true, "900": true,
}
var fontSizeKeywords = map[string]bool{
	"xx-small": true, "x-small": true, "small": true, "medium": true,
	"large": true, "x-large": true, "xx-large": true, "xxx-large": true,
	"smaller": true, "larger": true,
}

// isFontSizeToken implements font-size detection: a token
// ending in a CSS length unit or "%", or a named size keyword. The
// size token may itself carry a "/line-height" suffix.
func isFontSizeToken(tok string) bool {
	head, _, _ := strings.Cut(tok, "/")
	if fontSizeKeywords[strings.ToLower(head)] {
		return true
	}
	return isLength(head)
}

// expandFont implements font expansion: scan for the
// font-size token; everything before it is style/variant/weight
// (classified by keyword set, in any order), everything after is
// font-family. A "/" within the size run splits size from line-height.
// Omitted style/variant/weight/line-height default to "normal".
func expandFont(value string) map[string]string {
	toks := fields(value)
	sizeIdx := -1
	for i, t := range toks {
		if isFontSizeToken(t) {
			sizeIdx = i
			break
		}
	}
	if sizeIdx == -1 || sizeIdx == len(toks)-1 {
		return nil
	}

	m := map[string]string{
		"font-style":   "normal",
		"font-variant": "normal",
		"font-weight":  "normal",
	}

	for _, t := range toks[:sizeIdx] {
		low := strings.ToLower(t)
		switch {
		case fontStyleKeywords[low] && low != "normal":
			m["font-style"] = t
		case fontVariantKeywords[low] && low != "normal":
			m["font-variant"] = t
		case fontWeightKeywords[low] && low != "normal":
			m["font-weight"] = t
		}
	}

	sizeTok := toks[sizeIdx]
	if size, lineHeight, hasSlash := strings.Cut(sizeTok, "/"); hasSlash {
		m["font-size"] = size
		m["line-height"] = lineHeight
	} else {
		m["font-size"] = sizeTok
		m["line-height"] = "normal"
	}

	family := strings.Join(toks[sizeIdx+1:], " ")
	if family == "" {
		return nil
	}
	m["font-family"] = family
	return m
}

// createFont implements font creator: requires both
// font-size and font-family; omits normal-valued style/weight/line-height.
func createFont(m map[string]string) (string, bool) {
	size := m["font-size"]
	family := m["font-family"]
	if size == "" || family == "" {
		return "", false
	}

	var parts []string
	if v := m["font-style"]; v != "" && !strings.EqualFold(v, "normal") {
		parts = append(parts, v)
	}
	if v := m["font-variant"]; v != "" && !strings.EqualFold(v, "normal") {
		parts = append(parts, v)
	}
	if v := m["font-weight"]; v != "" && !strings.EqualFold(v, "normal") {
		parts = append(parts, v)
	}

	if lh := m["line-height"]; lh != "" && !strings.EqualFold(lh, "normal") {
		parts = append(parts, size+"/"+lh)
	} else {
		parts = append(parts, size)
	}
	parts = append(parts, family)

	return strings.Join(parts, " "), true
}
