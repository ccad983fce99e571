package cssshorthand

import "strings"

var bgRepeatKeywords = map[string]bool{
	"repeat": true, "repeat-x": true, "repeat-y": true,
	"no-repeat": true, "space": true, "round": true,
}

var bgAttachmentKeywords = map[string]bool{
	"scroll": true, "fixed": true, "local": true,
}

var bgPositionKeywords = map[string]bool{
	"left": true, "right": true, "top": true, "bottom": true, "center": true,
}

func looksLikeColor(tok string) bool {
	low := strings.ToLower(tok)
	if strings.HasPrefix(low, "#") || strings.HasPrefix(low, "rgb") || strings.HasPrefix(low, "hsl") {
		return true
	}
	return namedColors[low]
}

func looksLikeImage(tok string) bool {
	low := strings.ToLower(tok)
	return strings.HasPrefix(low, "url(") || low == "none"
}

// expandBackground implements background expansion:
// split on "/" to separate position from size, then classify each
// whitespace token against the repeat/attachment/position/color/image
// keyword sets, collecting position keywords together.
func expandBackground(value string) map[string]string {
	before, after, hasSlash := strings.Cut(value, "/")
	positionToks := fields(before)
	var size string
	if hasSlash {
		size = strings.TrimSpace(after)
	}

	m := map[string]string{}
	var positions []string

	i := 0
	for i < len(positionToks) {
		t := positionToks[i]
		low := strings.ToLower(t)
		switch {
		case looksLikeImage(t):
			m["background-image"] = t
		case bgRepeatKeywords[low]:
			m["background-repeat"] = t
		case bgAttachmentKeywords[low]:
			m["background-attachment"] = t
		case bgPositionKeywords[low] || isLength(t) || t == "%" || strings.HasSuffix(t, "%"):
			positions = append(positions, t)
		case looksLikeColor(t):
			m["background-color"] = t
		default:
			// Unknown token: still keep it as a positional fallback so a
			// round trip doesn't silently drop information.
			positions = append(positions, t)
		}
		i++
	}

	if len(positions) > 0 {
		m["background-position"] = strings.Join(positions, " ")
	}
	if size != "" {
		m["background-size"] = size
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

// createBackground implements background creator:
// requires >= 2 components, emits in canonical order
// "color image repeat attachment position / size".
func createBackground(m map[string]string) (string, bool) {
	count := 0
	for _, k := range []string{"background-color", "background-image", "background-repeat", "background-attachment", "background-position", "background-size"} {
		if m[k] != "" {
			count++
		}
	}
	if count < 2 {
		return "", false
	}

	var parts []string
	if v := m["background-color"]; v != "" {
		parts = append(parts, v)
	}
	if v := m["background-image"]; v != "" {
		parts = append(parts, v)
	}
	if v := m["background-repeat"]; v != "" {
		parts = append(parts, v)
	}
	if v := m["background-attachment"]; v != "" {
		parts = append(parts, v)
	}
	if v := m["background-position"]; v != "" {
		if size := m["background-size"]; size != "" {
			parts = append(parts, v+" / "+size)
		} else {
			parts = append(parts, v)
		}
	} else if size := m["background-size"]; size != "" {
		parts = append(parts, "0 0 / "+size)
	}

	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}
