package cssshorthand

import "strings"

var borderStyleKeywords = map[string]bool{
	"none": true, "hidden": true, "dotted": true, "dashed": true,
	"solid": true, "double": true, "groove": true, "ridge": true,
	"inset": true, "outset": true,
}

var borderWidthKeywords = map[string]bool{
	"thin": true, "medium": true, "thick": true, "inherit": true,
}

// classifyBorderToken classifies a single space-delimited token of a
// `border`/`border-{side}` value as width, style, or color: width is a
// keyword (thin|medium|thick|inherit) or digit-led, style is from a fixed
// keyword set, and anything else falls back to color.
func classifyBorderToken(tok string) (kind string) {
	low := strings.ToLower(tok)
	if borderWidthKeywords[low] {
		return "width"
	}
	if borderStyleKeywords[low] {
		return "style"
	}
	if len(tok) > 0 && (isDigit(tok[0]) || tok[0] == '.' || tok[0] == '-' || tok[0] == '+') {
		return "width"
	}
	return "color"
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// expandBorder expands a `border` (side == "") or `border-{side}` value
// into its width/style/color longhands, emitting all four sides for
// plain `border` or just one for a specific side.
func expandBorder(value string, side string) map[string]string {
	toks := fields(value)
	if len(toks) == 0 || len(toks) > 3 {
		return nil
	}

	var width, style, color string
	var haveWidth, haveStyle, haveColor bool
	for _, t := range toks {
		switch classifyBorderToken(t) {
		case "width":
			if haveWidth {
				return nil
			}
			width, haveWidth = t, true
		case "style":
			if haveStyle {
				return nil
			}
			style, haveStyle = t, true
		default:
			if haveColor {
				return nil
			}
			color, haveColor = t, true
		}
	}

	sides := []string{"top", "right", "bottom", "left"}
	if side != "" {
		sides = []string{side}
	}

	m := make(map[string]string, len(sides)*3)
	for _, s := range sides {
		if haveWidth {
			m["border-"+s+"-width"] = width
		}
		if haveStyle {
			m["border-"+s+"-style"] = style
		}
		if haveColor {
			m["border-"+s+"-color"] = color
		}
	}
	return m
}

// createBorder recreates a `border`/`border-{side}` shorthand. It
// requires a style component and refuses if any of the
// three component values contains a space, since that would produce
// invalid CSS (e.g. "1px solid rgb(0, 0, 0)" can't be safely joined with
// bare spaces once "rgb(0, 0, 0)" already has its own).
func createBorder(m map[string]string, side string) (string, bool) {
	prefix := "border-"
	if side != "" {
		prefix = "border-" + side + "-"
	}
	style, hasStyle := m[prefix+"style"]
	if !hasStyle || style == "" {
		return "", false
	}
	width := m[prefix+"width"]
	color := m[prefix+"color"]

	for _, v := range []string{width, style, color} {
		if strings.ContainsAny(v, " \t") {
			return "", false
		}
	}

	var parts []string
	if width != "" {
		parts = append(parts, width)
	}
	parts = append(parts, style)
	if color != "" {
		parts = append(parts, color)
	}
	return strings.Join(parts, " "), true
}
